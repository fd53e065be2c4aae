package registry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropDatabas3/teamster/internal/domain"
)

var (
	metricsOnce sync.Once

	commandsTotal *prometheus.CounterVec
)

// initMetrics registra los contadores de comandos. Idempotente; usa el
// registerer por defecto (el mismo que expone /metrics).
func initMetrics() {
	metricsOnce.Do(func() {
		commandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "team_commands_total",
			Help: "Comandos ejecutados por el registry, por comando y resultado",
		}, []string{"command", "result"})
		prometheus.MustRegister(commandsTotal)
	})
}

func observeCommand(command string, code domain.Code) {
	initMetrics()
	commandsTotal.WithLabelValues(command, string(code)).Inc()
}

func observeCommandOK(command string) {
	initMetrics()
	commandsTotal.WithLabelValues(command, "processed").Inc()
}
