package camhelper

// Camera helper for the Innodisk EVDM-OOM1 module (AP1302 ISP with an AR1335
// sensor).

// TODO: extend to support embedded metadata (see imx219 for an example)

type evdmOOM1 struct {
	base
}

// Smallest difference between the frame length and integration time, in
// units of lines.
const evdmOOM1FrameIntegrationDiff = 22

// NewEvdmOOM1 returns the helper for the EVDM-OOM1 module.
func NewEvdmOOM1() CamHelper {
	return &evdmOOM1{base{frameIntegrationDiff: evdmOOM1FrameIntegrationDiff}}
}

func (h *evdmOOM1) GainCode(gain float64) uint32 {
	return uint32(gain * 16.0)
}

func (h *evdmOOM1) Gain(code uint32) float64 {
	return float64(code) / 16.0
}

func (h *evdmOOM1) Delays() Delays {
	return Delays{Exposure: 2, Gain: 2, VBlank: 2, HBlank: 2}
}

// On startup we get a couple of under-exposed frames which we don't want
// shown, and which are no good for the control algorithms either. The same
// happens after a simple mode switch.

func (h *evdmOOM1) HideFramesStartup() int    { return 2 }
func (h *evdmOOM1) HideFramesModeSwitch() int { return 2 }

func (h *evdmOOM1) MistrustFramesStartup() int    { return 2 }
func (h *evdmOOM1) MistrustFramesModeSwitch() int { return 2 }
