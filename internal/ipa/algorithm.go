// Package ipa holds the contract between the camera's control scheduler and
// the per-frame tuning-control algorithms, together with the hardware
// parameter buffer the algorithms fill in.
package ipa

import (
	"github.com/banshee-data/ipa-control/internal/tuning"
)

// Algorithm is implemented by every per-frame control algorithm.
//
// The scheduler calls Init exactly once at camera configuration time and
// Prepare once per captured frame, in strictly increasing frame order, from
// a single control thread.
type Algorithm interface {
	// Init consumes the algorithm's tuning data section. It may block;
	// this is the only place parsing work is allowed. Algorithms should
	// degrade to safe defaults rather than fail, reserving errors for
	// tuning data that is present but unusable.
	Init(ctx *Context, tuningData *tuning.Data) error

	// Prepare merges the algorithm's hardware configuration for the given
	// frame into params. It must not block, must not fail, and must leave
	// params valid even when it has nothing to do. No other component
	// touches params during the call.
	Prepare(ctx *Context, frame uint32, frameCtx *FrameContext, params *Params)
}
