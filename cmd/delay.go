package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/errors"
)

var (
	delayBase    float64
	delayPerWord float64
	delayMax     float64
)

var delayCmd = &cobra.Command{
	Use:   "delay",
	Short: "Show or change the typing delay",
}

var delayGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current typing delay settings",
	Args:  cobra.NoArgs,
	RunE:  runDelayGet,
}

var delaySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the typing delay settings",
	Long: `Change the typing delay settings. Fields without a flag keep their
current value.`,
	Example: "  botconsole delay set --base 1 --per-word 0.15 --max 5",
	Args:    cobra.NoArgs,
	RunE:    runDelaySet,
}

func init() {
	delaySetCmd.Flags().Float64Var(&delayBase, "base", 0, "Base delay in seconds")
	delaySetCmd.Flags().Float64Var(&delayPerWord, "per-word", 0, "Extra seconds per word")
	delaySetCmd.Flags().Float64Var(&delayMax, "max", 0, "Maximum delay in seconds")

	delayCmd.AddCommand(delayGetCmd)
	delayCmd.AddCommand(delaySetCmd)
	rootCmd.AddCommand(delayCmd)
}

func currentDelay(cmd *cobra.Command, client *api.Client) (bot.DelaySettings, error) {
	resp, err := client.Triggers(cmd.Context())
	if err != nil {
		return bot.DelaySettings{}, fmt.Errorf("failed to load delay settings: %s", api.Detail(err))
	}
	return resp.TypingDelay.WithDefaults(), nil
}

func printDelay(w io.Writer, d bot.DelaySettings) {
	fmt.Fprintf(w, "Base delay:  %gs\n", d.BaseSeconds)
	fmt.Fprintf(w, "Per word:    %gs\n", d.PerWordSeconds)
	fmt.Fprintf(w, "Maximum:     %gs\n", d.MaxSeconds)
	fmt.Fprintf(w, "A %d-word reply waits about %.2fs.\n", bot.ExampleWordCount, d.Estimate(bot.ExampleWordCount))
}

func runDelayGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := currentDelay(cmd, newClient(cfg))
	if err != nil {
		return err
	}
	printDelay(cmd.OutOrStdout(), d)
	return nil
}

func runDelaySet(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("base") && !flags.Changed("per-word") && !flags.Changed("max") {
		return fmt.Errorf("nothing to change: pass --base, --per-word or --max")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	d, err := currentDelay(cmd, client)
	if err != nil {
		return err
	}
	if flags.Changed("base") {
		d.BaseSeconds = delayBase
	}
	if flags.Changed("per-word") {
		d.PerWordSeconds = delayPerWord
	}
	if flags.Changed("max") {
		d.MaxSeconds = delayMax
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s", errors.Message(err))
	}

	if err := client.UpdateDelay(cmd.Context(), d); err != nil {
		return fmt.Errorf("failed to update delay settings: %s", api.Detail(err))
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Delay settings updated successfully!")
	printDelay(out, d)
	return nil
}
