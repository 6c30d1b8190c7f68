package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/errors"
)

// Column widths for triggers list
const (
	nameColumnWidth     = 20
	keywordsColumnWidth = 32
)

var (
	triggerName     string
	triggerKeywords string
	triggerType     string
	triggerURL      string
	triggerYes      bool
)

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Manage keyword triggers",
	Long: `Manage the keyword triggers that make the bot reply with media.

Available subcommands:
  list    - List image and voice triggers
  add     - Add a trigger
  delete  - Delete a trigger by name`,
}

var triggersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List image and voice triggers",
	Args:  cobra.NoArgs,
	RunE:  runTriggersList,
}

var triggersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a trigger",
	Example: `  botconsole triggers add --name pricing --keywords "pricing, catalog" --type image --url https://example.com/p.png
  botconsole triggers add --name greeting --keywords hello,hi --type audio --url https://example.com/hi.mp3`,
	Args: cobra.NoArgs,
	RunE: runTriggersAdd,
}

var triggersDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a trigger by name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTriggersDelete,
}

func init() {
	triggersAddCmd.Flags().StringVar(&triggerName, "name", "", "Trigger name")
	triggersAddCmd.Flags().StringVar(&triggerKeywords, "keywords", "", "Comma-separated keywords")
	triggersAddCmd.Flags().StringVar(&triggerType, "type", string(bot.KindImage), "Media type: image or audio")
	triggersAddCmd.Flags().StringVar(&triggerURL, "url", "", "Media URL")

	triggersDeleteCmd.Flags().StringVar(&triggerName, "name", "", "Trigger name")
	triggersDeleteCmd.Flags().BoolVarP(&triggerYes, "yes", "y", false, "Skip the confirmation prompt")

	triggersCmd.AddCommand(triggersListCmd)
	triggersCmd.AddCommand(triggersAddCmd)
	triggersCmd.AddCommand(triggersDeleteCmd)
	rootCmd.AddCommand(triggersCmd)
}

func runTriggersList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resp, err := newClient(cfg).Triggers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load triggers: %s", api.Detail(err))
	}

	image, audio := bot.PartitionTriggers(resp.Triggers)
	out := cmd.OutOrStdout()
	printTriggerSection(out, "Image Triggers", image)
	fmt.Fprintln(out)
	printTriggerSection(out, "Voice Triggers", audio)
	return nil
}

func printTriggerSection(w io.Writer, title string, triggers []bot.Trigger) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(triggers))
	if len(triggers) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, t := range triggers {
		fmt.Fprintf(w, "  %-*s %-*s %s\n",
			nameColumnWidth, ansi.Truncate(t.Name, nameColumnWidth, "…"),
			keywordsColumnWidth, ansi.Truncate(t.KeywordList(), keywordsColumnWidth, "…"),
			t.Path)
	}
}

func runTriggersAdd(cmd *cobra.Command, args []string) error {
	trigger, err := bot.NewTrigger(triggerName, triggerKeywords, bot.Kind(strings.ToLower(triggerType)), triggerURL)
	if err != nil {
		return fmt.Errorf("%s", errors.Message(err))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := newClient(cfg).AddTrigger(cmd.Context(), trigger); err != nil {
		return fmt.Errorf("failed to add trigger: %s", api.Detail(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Trigger added successfully!")
	return nil
}

func runTriggersDelete(cmd *cobra.Command, args []string) error {
	name := triggerName
	if len(args) == 1 {
		name = args[0]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("trigger name is required")
	}

	if !triggerYes {
		ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete trigger %q?", name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := newClient(cfg).DeleteTrigger(cmd.Context(), name); err != nil {
		return fmt.Errorf("failed to delete trigger: %s", api.Detail(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Trigger deleted successfully!")
	return nil
}

// confirm asks a yes/no question on in. Anything but y or yes is a no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
