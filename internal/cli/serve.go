package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartlabel/internal/server"
)

// serveCommand creates the serve command that exposes rendering over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

Routes:
  POST /v1/render?format=svg|png|pdf|json&theme=<name>&chart=<name>
  POST /v1/layout?theme=<name>&chart=<name>
  GET  /healthz

Request bodies are chart documents (application/json or application/yaml).
The listen address, body limit and timeout come from the [server] section
of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := server.New(runner,
				server.WithLogger(c.Logger),
				server.WithPalettes(c.Config.Palette),
				server.WithLabelOptions(c.Config.LabelOptions()),
				server.WithMaxBodyBytes(c.Config.Server.MaxBodyBytes),
				server.WithTimeout(c.Config.Server.ReadTimeout),
			)

			printInfo("Serving %s", StyleLink.Render(serverURL(addr)))
			printKeyValue("cache", c.cacheBackend(noCache))
			printKeyValue("theme", c.Config.Theme)
			printNewline()

			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: [server] addr or :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) cacheBackend(noCache bool) string {
	if noCache {
		return "none"
	}
	return c.Config.Cache.Backend
}

func serverURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
