// Package pipeline implements the scheduler-side arithmetic for sensor
// actuation latency and transient-frame handling. The camera helpers supply
// the per-sensor constants; this package applies them.
package pipeline

import (
	"github.com/banshee-data/ipa-control/internal/camhelper"
)

// WriteFrame returns the frame at which a control value must be written for
// it to take effect at target, given the control's actuation delay in
// frames. Targets inside the initial pipeline ramp clamp to frame 0.
func WriteFrame(target uint32, delay int) uint32 {
	d := uint32(delay)
	if d >= target {
		return 0
	}
	return target - d
}

// Depth returns the number of in-flight frames the scheduler must keep
// outstanding: the largest actuation delay across all controls.
func Depth(d camhelper.Delays) int {
	depth := d.Exposure
	if d.Gain > depth {
		depth = d.Gain
	}
	if d.VBlank > depth {
		depth = d.VBlank
	}
	if d.HBlank > depth {
		depth = d.HBlank
	}
	return depth
}

// Classifier tracks one camera's stream history and classifies each frame as
// hidden (not delivered downstream) or mistrusted (statistics excluded from
// control feedback). The two are independent: a frame can be mistrusted
// without being hidden and vice versa.
type Classifier struct {
	helper camhelper.CamHelper

	modeSwitchFrame uint32
	modeSwitched    bool
}

// NewClassifier returns a classifier for a freshly started stream.
func NewClassifier(helper camhelper.CamHelper) *Classifier {
	return &Classifier{helper: helper}
}

// ModeSwitch records that the sensor switched modes starting at frame.
func (c *Classifier) ModeSwitch(frame uint32) {
	c.modeSwitchFrame = frame
	c.modeSwitched = true
}

// Hidden reports whether the frame must be withheld from the end consumer.
func (c *Classifier) Hidden(frame uint32) bool {
	if frame < uint32(c.helper.HideFramesStartup()) {
		return true
	}
	return c.inModeSwitchWindow(frame, c.helper.HideFramesModeSwitch())
}

// Mistrusted reports whether the frame's statistics must be kept out of the
// feedback-control algorithms.
func (c *Classifier) Mistrusted(frame uint32) bool {
	if frame < uint32(c.helper.MistrustFramesStartup()) {
		return true
	}
	return c.inModeSwitchWindow(frame, c.helper.MistrustFramesModeSwitch())
}

func (c *Classifier) inModeSwitchWindow(frame uint32, count int) bool {
	if !c.modeSwitched || frame < c.modeSwitchFrame {
		return false
	}
	return frame-c.modeSwitchFrame < uint32(count)
}
