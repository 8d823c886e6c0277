package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollseq"
	"github.com/phanxgames/scrollseq/internal/progress"
)

var preloadCmd = &cobra.Command{
	Use:   "preload",
	Short: "Load every frame and report failures",
	Long:  `Loads the whole frame sequence the way the page does, shows progress, and lists the slots that failed to load.`,
	RunE:  runPreload,
}

func init() {
	rootCmd.AddCommand(preloadCmd)
}

func runPreload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	opts, err := cfg.SequenceOptions(frameLoader())
	if err != nil {
		return err
	}
	opts.Surface = scrollseq.NewRasterSurface(0, 0)
	seq, err := scrollseq.NewScrollSequence(opts)
	if err != nil {
		return err
	}
	defer seq.Unmount()

	reporter := progress.NewReporter("Loading frames", cmd.ErrOrStderr())
	start := time.Now()
	if err := settle(ctx, seq, scrollseq.NewHub(scrollseq.Dimensions{}), reporter); err != nil {
		return err
	}

	cache := seq.Cache()
	failed := cache.Failed()
	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d frames loaded in %v\n", cache.Len()-len(failed), cache.Len(), time.Since(start).Round(time.Millisecond))
	for _, i := range failed {
		fmt.Fprintf(cmd.OutOrStdout(), "  failed: %s\n", cache.Paths()[i])
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d frames failed to load", len(failed))
	}
	return nil
}

// settle mounts seq on host and applies load results until every load has
// settled, reporting each one.
func settle(ctx context.Context, seq *scrollseq.ScrollSequence, host scrollseq.Host, reporter progress.Reporter) error {
	cache := seq.Cache()
	if reporter != nil {
		reporter.Start(cache.Len())
		defer reporter.Finish()
		cache.OnSettled(func(index int, f *scrollseq.Frame, err error) {
			msg := cache.Paths()[index]
			if err != nil {
				msg += " (failed)"
			}
			reporter.Update(cache.Settled(), msg)
		})
	}
	if err := seq.Mount(ctx, host); err != nil {
		return err
	}
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		seq.Update()
		if seq.State() == scrollseq.StateReady {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
