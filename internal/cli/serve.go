package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/statebars/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [data.json]",
		Short: "Serve the interactive chart over HTTP",
		Long: `Serve the chart for a dataset file or http(s) URL.

The index page lists the states next to the chart; selecting one highlights
its bar. The SVG, scene JSON, entries and dataset are also served directly:

  /chart.svg?brushed=Texas&width=1200&height=800
  /chart.json
  /entries.json
  /dataset.json
  /metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			runner := c.newRunner(cfg)
			ds, err := runner.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			srv := server.New(ds, runner, c.Logger)
			printInfo("Serving %s on %s", args[0], StyleValue.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
