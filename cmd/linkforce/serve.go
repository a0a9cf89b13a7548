package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the profile over HTTP",
		Long:  `Serve the profile page, the share card and a PNG snapshot of the card. The server is read-only.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (defaults to serve.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *rootFlags, opts *serveOptions) error {
	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	addr := opts.addr
	if addr == "" {
		addr = app.Config.Serve.Addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(app.Store, app.Catalog, app.Exporter, app.Log)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving preview on http://%s (Ctrl+C to stop)\n", addr)
	if err := srv.Listen(ctx, addr); err != nil {
		return newCommandError("serve", "listening on "+addr, err, "Pick another address with --addr.")
	}
	return nil
}
