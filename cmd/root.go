package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/app"
	"github.com/zhubert/botconsole/internal/config"
	"github.com/zhubert/botconsole/internal/logger"
)

var (
	debugMode             bool
	apiURLFlag            string
	userIDFlag            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "botconsole",
	Short: "Admin console for the Instagram chatbot",
	Long: `botconsole is a terminal console for the Instagram chatbot backend.
It previews conversations in a chat simulator, manages keyword triggers that
send images and voice notes, tunes the typing delay and shows live usage stats.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Chatbot backend URL (overrides config and environment)")
	rootCmd.PersistentFlags().StringVar(&userIDFlag, "user-id", "", "Recipient id used by the chat simulator")
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("botconsole %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("botconsole %s\n", version)
}

// loadConfig loads the config and applies the global flags on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if apiURLFlag != "" {
		cfg.SetAPIURL(apiURLFlag)
	}
	if userIDFlag != "" {
		cfg.SetTestUserID(userIDFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.GetAPIURL(), cfg.RequestTimeout())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runProgram(cfg)
}

// runProgram runs the TUI against the backend cfg points at
func runProgram(cfg *config.Config) error {
	if err := logger.Init(logger.DefaultLogPath); err != nil {
		return err
	}
	defer logger.Close()

	logger.WithComponent("app").Info("starting console", "version", version, "api_url", cfg.GetAPIURL())

	m := app.New(cfg, newClient(cfg), version)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
