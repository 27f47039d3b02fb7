package ipa

import (
	"github.com/google/uuid"

	"github.com/banshee-data/ipa-control/internal/camhelper"
	"github.com/banshee-data/ipa-control/internal/monitoring"
)

// Context is the per-camera state shared by every algorithm. It is created
// when the camera is opened and destroyed when it is closed; the camera
// helper reference is fixed for that whole lifetime. One control thread per
// camera drives all calls, so Context needs no locking.
type Context struct {
	// CameraID tags diagnostics and traces from this camera instance.
	CameraID uuid.UUID

	// Helper is the sensor timing model for the camera's sensor module.
	Helper camhelper.CamHelper

	// Diag receives the algorithms' diagnostics.
	Diag *monitoring.Logger
}

// NewContext builds the shared state for one opened camera. A nil diag gets
// a default standard-library-backed sink.
func NewContext(helper camhelper.CamHelper, diag *monitoring.Logger) *Context {
	if diag == nil {
		diag = monitoring.Default("ipa")
	}
	return &Context{
		CameraID: uuid.New(),
		Helper:   helper,
		Diag:     diag,
	}
}

// FrameContext is the per-frame state threaded through each algorithm call
// in registration order. One instance exists per in-flight frame; it is
// created when the frame request begins and discarded when the frame
// completes. Algorithms must not retain it past the call that provided it.
type FrameContext struct {
	// Frame is the monotonically increasing capture sequence number.
	Frame uint32

	// Sensor carries the exposure actually programmed for this frame, for
	// the algorithms that feed back on image statistics.
	Sensor struct {
		ExposureLines uint32
		Gain          float64
	}
}
