package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"web_copy_generator/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, agent, err := setup(root, "")
			if err != nil {
				return err
			}
			srv, err := server.New(agent, logger)
			if err != nil {
				return err
			}
			listen := cfg.ServerAddr
			if addr != "" {
				listen = addr
			}
			logger.Infof("Starting web server on %s (provider=%s model=%s)", listen, cfg.Provider, cfg.Model)
			return http.ListenAndServe(listen, srv.Routes())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "http listen address (overrides config server_addr)")
	return cmd
}
