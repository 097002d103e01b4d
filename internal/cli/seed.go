package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietpage/quietpage/internal/platform/logger"
	"github.com/quietpage/quietpage/internal/platform/seeder"
	postseeder "github.com/quietpage/quietpage/internal/posts/seeder"
	"github.com/quietpage/quietpage/internal/server"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load starter posts into the database",
	Long: `Load starter posts from a YAML file. Seeding is idempotent:
posts whose title already exists are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bootstrapLogger := logger.NewBootstrapLogger()
		config, err := server.LoadConfig(bootstrapLogger)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		log := logger.NewConfiguredLogger(logger.Config{
			Environment: config.Environment,
			LogLevel:    config.LogLevel,
		})

		pool, cleanup, err := server.ConnectDatabase(ctx, config, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer cleanup()

		orchestrator := seeder.NewOrchestrator(log, pool, []seeder.Seeder{
			postseeder.NewPostsSeeder(seedFile, log),
		})

		return orchestrator.RunAll(ctx)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed/posts.yaml", "path to the posts seed file")
}
