package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollseq"
	"github.com/phanxgames/scrollseq/config"
)

var (
	cfgFile   string
	verbose   bool
	framesDir string
)

var rootCmd = &cobra.Command{
	Use:   "scrollseq",
	Short: "Scroll-driven frame sequence renderer",
	Long: `scrollseq preloads a numbered sequence of still images and plays them
back as the page scrolls: a piecewise-linear schedule maps scroll progress
to a frame, and overlay text fades in and out over stage windows.`,
	SilenceUsage: true,
}

func execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "scrollseq.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&framesDir, "dir", ".", "directory frame paths are resolved against")
}

// loadConfig reads and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// frameLoader resolves frame paths against --dir.
func frameLoader() scrollseq.Loader {
	return scrollseq.NewFSLoader(os.DirFS(framesDir))
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
