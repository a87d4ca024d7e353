// Package serve implements the command running the extraction HTTP API.
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/internal/container"
	"fjacquet/finvision/internal/server"

	"github.com/spf13/cobra"
)

// Addr overrides server.addr when set
var Addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the receipt extraction HTTP API",
	Long: `Serve the receipt extraction HTTP API until interrupted.

Endpoints:
  POST /extract  body {"text": "..."}; returns products and final_amount
  GET  /health   liveness probe

Example:
  finvision serve --addr :8080`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&Addr, "addr", "", "Listen address (default from server.addr)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	app, err := root.GetContainer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, app, Addr)
}

// newServer returns the container's server, or a new one bound to addr.
func newServer(app *container.Container, addr string) *server.Server {
	if addr == "" {
		return app.GetServer()
	}
	return server.NewServer(app.GetParser(), server.Options{
		Addr: addr,
		Mode: app.GetConfig().Server.Mode,
	}, app.GetLogger())
}

func run(ctx context.Context, app *container.Container, addr string) error {
	return newServer(app, addr).Run(ctx)
}
