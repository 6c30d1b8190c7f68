package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zhubert/botconsole/internal/api"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the backend's usage counters",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	stats, err := newClient(cfg).Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %s", api.Detail(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Active sessions:      %s\n", humanize.Comma(int64(stats.ActiveSessions)))
	fmt.Fprintf(out, "Total conversations:  %s\n", humanize.Comma(int64(stats.TotalConversations)))
	return nil
}
