package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietpage/quietpage/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog server",
	Long: `Start the HTTP server. Configuration comes from the environment,
optionally loaded from a .env file in the working directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := server.InitializeApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer cleanup()

		return app.Run()
	},
}
