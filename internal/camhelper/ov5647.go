package camhelper

// Camera helper for the OmniVision OV5647 sensor.

type ov5647 struct {
	base
}

const ov5647FrameIntegrationDiff = 4

// NewOV5647 returns the helper for the OV5647 sensor.
func NewOV5647() CamHelper {
	return &ov5647{base{frameIntegrationDiff: ov5647FrameIntegrationDiff}}
}

func (h *ov5647) GainCode(gain float64) uint32 {
	return uint32(gain * 16.0)
}

func (h *ov5647) Gain(code uint32) float64 {
	return float64(code) / 16.0
}

func (h *ov5647) BlackLevel() (int16, bool) {
	return 1024, true
}

func (h *ov5647) Delays() Delays {
	return Delays{Exposure: 2, Gain: 2, VBlank: 2, HBlank: 2}
}

func (h *ov5647) HideFramesStartup() int {
	// The first couple of frames are visibly under-exposed.
	return 2
}

func (h *ov5647) MistrustFramesStartup() int {
	// Exposure takes noticeably longer to settle on this sensor than the
	// frames we hide, so keep the statistics out of the loops for longer.
	return 4
}

func (h *ov5647) MistrustFramesModeSwitch() int {
	return 2
}
