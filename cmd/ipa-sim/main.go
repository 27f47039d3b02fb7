// Command ipa-sim drives the tuning-control core the way a capture pipeline
// would: it opens a number of simulated cameras, each with its own shared
// context and control loop, and walks a frame sequence through the
// registered algorithms while classifying transient frames.
//
// No hardware is touched; the point is to exercise the scheduler contract
// end to end and print what the hardware would have been asked to do.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/ipa-control/internal/camhelper"
	"github.com/banshee-data/ipa-control/internal/ipa"
	"github.com/banshee-data/ipa-control/internal/ipa/algorithms"
	"github.com/banshee-data/ipa-control/internal/monitoring"
	"github.com/banshee-data/ipa-control/internal/pipeline"
	"github.com/banshee-data/ipa-control/internal/tuning"
	"github.com/banshee-data/ipa-control/internal/version"
)

// fallbackTuning is used when no tuning file is given: run the exemplar
// algorithm with no calibration so the default path is visible.
const fallbackTuning = `
algorithms:
  - BlackLevelCorrection: {}
`

func main() {
	var (
		helperName   = flag.String("helper", "evdmoom1", "sensor module to simulate")
		cameras      = flag.Int("cameras", 2, "number of concurrent cameras")
		frames       = flag.Uint("frames", 12, "frames to run per camera")
		tuningFile   = flag.String("tuning", "", "tuning file (YAML); empty runs uncalibrated")
		modeSwitchAt = flag.Int("mode-switch", -1, "frame at which to simulate a mode switch (-1: never)")
		showVersion  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ipa-sim %s (%s)\n", version.Version, version.GitSHA)
		return
	}

	root, err := loadTuning(*tuningFile)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	helpers := camhelper.BuiltinHelpers()
	registry := ipa.NewRegistry()
	algorithms.Register(registry)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < *cameras; i++ {
		name := fmt.Sprintf("cam%d", i)
		g.Go(func() error {
			return runCamera(name, *helperName, helpers, registry, root, uint32(*frames), *modeSwitchAt)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
}

func loadTuning(path string) (*tuning.Data, error) {
	if path == "" {
		return tuning.Parse([]byte(fallbackTuning))
	}
	return tuning.Load(path)
}

// runCamera performs one camera's lifecycle: open, configure, then a
// strictly ordered per-frame loop.
func runCamera(name, helperName string, helpers *camhelper.Registry, registry *ipa.Registry, root *tuning.Data, frames uint32, modeSwitchAt int) error {
	helper, err := helpers.Get(helperName)
	if err != nil {
		return err
	}

	diag := monitoring.New(name, log.New(os.Stderr, "", log.LstdFlags).Printf)
	ctx := ipa.NewContext(helper, diag)

	algos, err := registry.CreateAlgorithms(ctx, root)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	delays := helper.Delays()
	diag.Infof("camera %s open: helper=%s depth=%d delays={exposure:%d gain:%d vblank:%d hblank:%d}",
		ctx.CameraID, helperName, pipeline.Depth(delays),
		delays.Exposure, delays.Gain, delays.VBlank, delays.HBlank)

	classifier := pipeline.NewClassifier(helper)

	for frame := uint32(0); frame < frames; frame++ {
		if modeSwitchAt >= 0 && frame == uint32(modeSwitchAt) {
			classifier.ModeSwitch(frame)
			diag.Infof("frame %d: mode switch", frame)
		}

		frameCtx := &ipa.FrameContext{Frame: frame}
		var params ipa.Params
		for _, algorithm := range algos {
			algorithm.Prepare(ctx, frame, frameCtx, &params)
		}

		if params.ModuleCfgUpdate != 0 {
			diag.Infof("frame %d: BLC fixed values r=%d gr=%d gb=%d b=%d (write at frame %d for effect here)",
				frame, params.BLC.FixedVal.R, params.BLC.FixedVal.Gr,
				params.BLC.FixedVal.Gb, params.BLC.FixedVal.B,
				pipeline.WriteFrame(frame, delays.Exposure))
		}

		if classifier.Hidden(frame) || classifier.Mistrusted(frame) {
			diag.Debugf("frame %d: hidden=%t mistrusted=%t",
				frame, classifier.Hidden(frame), classifier.Mistrusted(frame))
		}
	}

	return nil
}
