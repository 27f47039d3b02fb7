package camhelper

// Camera helper for the Sony IMX219 sensor.

type imx219 struct {
	base
}

const imx219FrameIntegrationDiff = 4

// NewIMX219 returns the helper for the IMX219 sensor.
func NewIMX219() CamHelper {
	return &imx219{base{frameIntegrationDiff: imx219FrameIntegrationDiff}}
}

// The IMX219 gain register is an offset code, not a multiplier: analogue
// gain = 256 / (256 - code).

func (h *imx219) GainCode(gain float64) uint32 {
	return uint32(256.0 - 256.0/gain)
}

func (h *imx219) Gain(code uint32) float64 {
	return 256.0 / (256.0 - float64(code))
}

func (h *imx219) BlackLevel() (int16, bool) {
	return 4096, true
}

func (h *imx219) SensorEmbeddedDataPresent() bool {
	return true
}

func (h *imx219) MistrustFramesModeSwitch() int {
	// The sensor applies the new mode's exposure one frame late.
	return 1
}
