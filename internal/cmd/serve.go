package cmd

import (
	"fmt"

	"focusflow/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	Host string `help:"Host to listen on" default:"0.0.0.0"`
	Port string `help:"Port to listen on" default:"2222"`
}

// Run starts the SSH server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.settings)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}
	return srv.Start()
}
