// @title Smart Learning Path Generator API
// @version 1.0
// @description Dynamic learning roadmap generator powered by AI
// @BasePath /v1

package main

import (
	"context"
	"fmt"
	"os"

	"smart_learning_path/internal/app"
	"smart_learning_path/internal/config"
	"smart_learning_path/pkg/database"
	"smart_learning_path/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "smart-learning-path",
	Short:         "AI learning roadmap generator API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Prepare the configured store (SQL tables or bucket) and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.InitLogger(cfg)
		defer log.Sync()

		if err := database.Migrate(cmd.Context(), cfg, log); err != nil {
			return err
		}
		log.Info("数据库迁移完成，退出程序", zap.String("driver", cfg.Store.Driver))
		return nil
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.InitLogger(cfg)
	defer log.Sync()
	log.Info("Logger initialized successfully")

	application, err := app.NewApp(cmd.Context(), cfg, configDir, log)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
