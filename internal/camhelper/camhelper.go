// Package camhelper models what differs between camera sensor modules so the
// rest of the control pipeline stays sensor-agnostic: the mapping between
// physical gain and the sensor's gain-code register, control actuation
// delays, and the transient frames around stream start and mode switches.
package camhelper

import "time"

// Delays describes, per control, how many frames pass between committing a
// value to the sensor and seeing its effect in the pixel stream. To land a
// value on frame N the scheduler must issue the write at frame N minus the
// control's delay.
type Delays struct {
	Exposure int
	Gain     int
	VBlank   int
	HBlank   int
}

// CamHelper is implemented once per supported sensor module.
//
// Hidden and mistrusted frames are independent knobs: hiding governs what is
// delivered downstream, mistrusting governs what the feedback-control
// algorithms may use to update their state. A frame can be one without being
// the other.
type CamHelper interface {
	// GainCode converts a physical gain multiplier to the sensor's gain
	// register code. The conversion is generally non-linear and truncates
	// toward zero to match the register semantics.
	GainCode(gain float64) uint32

	// Gain converts a gain register code back to a physical gain
	// multiplier. The round trip through GainCode is lossy.
	Gain(code uint32) float64

	// BlackLevel reports the sensor's calibrated black level in 12-bit
	// scale, when the module has one.
	BlackLevel() (int16, bool)

	// Delays reports the sensor's control actuation latencies.
	Delays() Delays

	// SensorEmbeddedDataPresent reports whether the sensor embeds metadata
	// lines in the pixel stream.
	SensorEmbeddedDataPresent() bool

	// HideFramesStartup is the number of frames after stream start that
	// must not be delivered downstream.
	HideFramesStartup() int

	// HideFramesModeSwitch is the number of frames after a mode switch
	// that must not be delivered downstream.
	HideFramesModeSwitch() int

	// MistrustFramesStartup is the number of frames after stream start
	// whose statistics the control algorithms must ignore.
	MistrustFramesStartup() int

	// MistrustFramesModeSwitch is the number of frames after a mode switch
	// whose statistics the control algorithms must ignore.
	MistrustFramesModeSwitch() int

	// FrameIntegrationDiff is the smallest difference between the frame
	// length and the integration time, in lines.
	FrameIntegrationDiff() int
}

// base supplies the defaults shared by all sensor modules. Concrete helpers
// embed it and override only what their hardware does differently.
type base struct {
	frameIntegrationDiff int
}

func (b base) BlackLevel() (int16, bool) { return 0, false }

func (b base) Delays() Delays {
	return Delays{Exposure: 2, Gain: 1, VBlank: 2, HBlank: 2}
}

func (b base) SensorEmbeddedDataPresent() bool { return false }

func (b base) HideFramesStartup() int    { return 0 }
func (b base) HideFramesModeSwitch() int { return 0 }

// The very first frame's statistics reflect the sensor's reset exposure, not
// anything the control loops asked for.
func (b base) MistrustFramesStartup() int    { return 1 }
func (b base) MistrustFramesModeSwitch() int { return 1 }

func (b base) FrameIntegrationDiff() int { return b.frameIntegrationDiff }

// Exposure converts an integration line count to a duration, given the
// sensor mode's line period.
func Exposure(lines uint32, lineDuration time.Duration) time.Duration {
	return time.Duration(lines) * lineDuration
}

// ExposureLines converts an exposure duration to whole integration lines,
// truncating toward zero.
func ExposureLines(exposure, lineDuration time.Duration) uint32 {
	if lineDuration <= 0 {
		return 0
	}
	return uint32(exposure / lineDuration)
}
