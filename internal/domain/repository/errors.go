package repository

import "errors"

var (
	// ErrNotFound indica que no hay registro para el id pedido.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indica que el backend no respondió (conexión,
	// timeout). El registry lo superficia como INTERNAL_ERROR.
	ErrUnavailable = errors.New("store unavailable")
)

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
