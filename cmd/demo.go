package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/zhubert/botconsole/internal/demo"
)

var demoPort int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the console against a built-in stub backend",
	Long: `Start an in-memory stand-in for the chatbot backend on localhost and run
the console against it. The stub comes with a pricing image trigger and a
greeting voice trigger and answers every message with a canned reply.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVarP(&demoPort, "port", "p", 0, "Port for the stub backend (0 picks a free port)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	gin.SetMode(gin.ReleaseMode)
	run, err := demo.NewServer(demo.NewStore()).Start(fmt.Sprintf("127.0.0.1:%d", demoPort))
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		run.Shutdown(ctx)
	}()

	apiURLFlag = run.URL
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runProgram(cfg)
}
