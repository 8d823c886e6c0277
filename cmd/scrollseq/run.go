package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollseq"
)

var runScript string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the page in a window",
	Long:  `Opens a resizable window that plays the frame sequence as you scroll with the wheel or keyboard.`,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runScript, "script", "", "JSON test script to replay (scroll/progress/sweep/resize/wait/screenshot steps)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := cfg.PageOptions(frameLoader())
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	page, err := scrollseq.NewPage(ctx, opts)
	if err != nil {
		return err
	}
	page.SetDebugMode(verbose)

	if runScript != "" {
		data, err := os.ReadFile(runScript)
		if err != nil {
			return fmt.Errorf("reading script %s: %w", runScript, err)
		}
		runner, err := scrollseq.LoadTestScript(data)
		if err != nil {
			return err
		}
		page.SetTestRunner(runner)
	}

	return scrollseq.Run(page, scrollseq.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: cfg.Window.ShowFPS,
	})
}
