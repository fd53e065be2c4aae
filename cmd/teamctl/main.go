package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	var (
		baseURL = envOr("TEAMSTER_URL", "http://localhost:8080")
		out     = envOr("TEAMSTER_OUT", "text")
	)

	root := &cobra.Command{
		Use:   "teamctl",
		Short: "CLI para operar equipos contra la API de teamster",
	}
	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env TEAMSTER_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: 30 * time.Second}}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.OutFormat = out
	}

	getCmd := &cobra.Command{
		Use:   "get <teamID>",
		Short: "Buscar un equipo por id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/api/teams/"+args[0], nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	var createID, createLeader, createMode string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un equipo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if createID == "" || createLeader == "" {
				return fmt.Errorf("faltan --id y --leader")
			}
			body, _ := json.Marshal(map[string]string{
				"id":       createID,
				"leaderId": createLeader,
				"mode":     createMode,
			})
			status, resp, err := cl.do("POST", "/api/teams/create", body)
			if err != nil {
				return err
			}
			cl.print(status, resp)
			return nil
		},
	}
	createCmd.Flags().StringVar(&createID, "id", "", "id del equipo (uuid)")
	createCmd.Flags().StringVar(&createLeader, "leader", "", "id del líder (uuid)")
	createCmd.Flags().StringVar(&createMode, "mode", "TEAM_VS_TEAM", "modo: TEAM_DEATH_MATCH|TEAM_VS_TEAM")

	var sender, member string
	memberAction := func(use, short, verb string) *cobra.Command {
		c := &cobra.Command{
			Use:   use + " <teamID>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q := fmt.Sprintf("?sender=%s&member=%s", sender, member)
				status, body, err := cl.do("PUT", "/api/teams/"+args[0]+"/"+verb+q, nil)
				if err != nil {
					return err
				}
				cl.print(status, body)
				return nil
			},
		}
		c.Flags().StringVar(&sender, "sender", "", "id del emisor (uuid)")
		c.Flags().StringVar(&member, "member", "", "id del miembro (uuid)")
		return c
	}

	addCmd := memberAction("add", "Agregar un miembro (solo líder)", "add")
	kickCmd := memberAction("kick", "Expulsar un miembro (solo líder)", "kick")
	changeLeaderCmd := memberAction("change-leader", "Transferir liderazgo", "change-leader")

	var leaveMember string
	leaveCmd := &cobra.Command{
		Use:   "leave <teamID>",
		Short: "Salir del equipo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("PUT", "/api/teams/"+args[0]+"/leave?member="+leaveMember, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	leaveCmd.Flags().StringVar(&leaveMember, "member", "", "id del miembro (uuid)")

	var modeSender, newMode string
	changeModeCmd := &cobra.Command{
		Use:   "change-mode <teamID>",
		Short: "Cambiar el modo del equipo (solo líder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := fmt.Sprintf("?sender=%s&mode=%s", modeSender, newMode)
			status, body, err := cl.do("PUT", "/api/teams/"+args[0]+"/change-mode"+q, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	changeModeCmd.Flags().StringVar(&modeSender, "sender", "", "id del emisor (uuid)")
	changeModeCmd.Flags().StringVar(&newMode, "mode", "", "modo nuevo")

	var disbandSender string
	disbandCmd := &cobra.Command{
		Use:   "disband <teamID>",
		Short: "Disolver el equipo (solo líder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("DELETE", "/api/teams/"+args[0]+"/disband?sender="+disbandSender, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	disbandCmd.Flags().StringVar(&disbandSender, "sender", "", "id del emisor (uuid)")

	root.AddCommand(getCmd, createCmd, addCmd, kickCmd, leaveCmd, changeLeaderCmd, changeModeCmd, disbandCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
