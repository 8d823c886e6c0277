// Package scrollseq is a scroll-driven frame-sequence renderer for
// [Ebitengine].
//
// A [ScrollSequence] preloads a fixed list of still images, maps the scroll
// progress of a tall container to a frame index through a piecewise-linear
// [Schedule], and redraws a cover-fitted canvas whenever that frame changes.
// Overlay text layers fade in and out over [StageWindow] ranges of the same
// progress value.
//
// # Quick start
//
// The simplest way to get started is [Run], which wraps a [Page] (sequence,
// overlays, navbar, loading placeholder) in a window:
//
//	page, err := scrollseq.NewPage(ctx, scrollseq.PageOptions{
//		Sequence: scrollseq.SequenceOptions{
//			Frames: scrollseq.FrameSpec{Base: "frames", Count: 40},
//			Loader: scrollseq.NewFSLoader(os.DirFS(".")),
//		},
//		Brand: "Yobin",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	scrollseq.Run(page, scrollseq.RunConfig{Title: "Portfolio", Width: 1280, Height: 720})
//
// For full control, drive a sequence yourself. Anything implementing [Host]
// can supply the viewport and scroll offset; [Hub] is a manual one:
//
//	hub := scrollseq.NewHub(scrollseq.Dimensions{Width: 800, Height: 600})
//	seq, _ := scrollseq.NewScrollSequence(opts)
//	seq.Mount(ctx, hub)
//	// each tick:
//	seq.Update()
//	// each refresh:
//	seq.Render()
//
// # Lifecycle
//
// A mounted sequence is in [StateLoading] until every frame load has settled,
// successfully or not. It then enters [StateReady] for good. Render draws at
// most once per call and only when the frame or viewport changed. Unmount
// cancels loads and detaches from the host; no draw and no callback happens
// afterward.
//
// # Threading
//
// Loads run on a bounded pool of goroutines. Their results are applied only
// by [ScrollSequence.Update] (via [FrameCache.Poll]) so every other method
// runs on the game loop goroutine.
//
// [Ebitengine]: https://ebitengine.org
package scrollseq
