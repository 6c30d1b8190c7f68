package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
)

var sendNoDelay bool

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send one chat message and print the bot's reply",
	Long: `Send a single message to the chatbot as the configured test user and
print the reply. The command waits for the typing delay the backend declares
before printing, unless --no-delay is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().BoolVar(&sendNoDelay, "no-delay", false, "Print the reply without waiting for the typing delay")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	message := strings.Join(args, " ")
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	resp, err := newClient(cfg).Chat(cmd.Context(), cfg.GetTestUserID(), message)
	if err != nil {
		return fmt.Errorf("%s%s", bot.ErrorPrefix, api.Detail(err))
	}

	if !sendNoDelay {
		select {
		case <-time.After(bot.ReplyDelay(resp.TypingDelay)):
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Response)
	return nil
}
