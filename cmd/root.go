package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/niveshak/internal/app"
	"github.com/Rorical/niveshak/internal/config"
	"github.com/Rorical/niveshak/internal/core"
	"github.com/Rorical/niveshak/internal/logger"
	"github.com/Rorical/niveshak/internal/router"
)

var rootCmd = &cobra.Command{
	Use:   "niveshak",
	Short: "Terminal chat with your investing assistant",
	Long:  `Niveshak is a terminal chat widget. Configure an assistant profile to get replies.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(router.ChatPath); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

// run starts the UI on startPath and blocks until the user quits.
func run(startPath string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	var responder core.Responder
	if r := core.NewOpenAIResponder(cfg); r != nil {
		responder = r
	} else {
		logg.Info("active profile has no API key", zap.String("profile", cfg.ActiveProfile))
	}

	application := app.NewApplication(cfg, responder, logg, startPath)
	defer application.Stop()

	return application.Start()
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(profileCmd)
}
