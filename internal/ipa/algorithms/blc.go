// Package algorithms holds the per-frame control algorithms programmed into
// the ISP, and the routine registering them with the host's registry.
package algorithms

import (
	"github.com/banshee-data/ipa-control/internal/ipa"
	"github.com/banshee-data/ipa-control/internal/tuning"
)

// Sensors do not report a signal level of zero for true black, so the ISP
// subtracts a configurable per-channel offset from every pixel. The black
// level can be measured during sensor calibration or during the camera
// tuning process; runtime measurement from an optical dark region isn't
// supported.

// BlackLevelCorrection programs the ISP's black level subtraction. The
// configuration is fixed for the life of the stream, so only frame 0 writes
// anything.
type BlackLevelCorrection struct {
	active bool

	// Per-channel levels in the sensor-native 12-bit scale. After a
	// successful Init all four are defined.
	red    int16
	greenR int16
	greenB int16
	blue   int16
}

// defaultBlackLevel is the 12-bit fallback when neither the camera helper
// nor the tuning file supplies a level.
const defaultBlackLevel = 4096

// NewBlackLevelCorrection returns an uninitialised instance.
func NewBlackLevelCorrection() *BlackLevelCorrection {
	return &BlackLevelCorrection{}
}

// Init resolves the black levels from, in order of precedence: the tuning
// file when the helper has no calibration, the tuning file as a deprecated
// override when it supplies all four channels, else the helper's calibrated
// level for every channel. Every branch resolves to a defined level set, so
// Init never fails.
func (b *BlackLevelCorrection) Init(ctx *ipa.Context, tuningData *tuning.Data) error {
	levelRed, haveRed := tuningData.Get("R").Int16()
	levelGreenR, haveGreenR := tuningData.Get("Gr").Int16()
	levelGreenB, haveGreenB := tuningData.Get("Gb").Int16()
	levelBlue, haveBlue := tuningData.Get("B").Int16()
	tuningHasLevels := haveRed && haveGreenR && haveGreenB && haveBlue

	blackLevel, haveBlackLevel := ctx.Helper.BlackLevel()
	if !haveBlackLevel {
		// Not all camera helpers have been updated with black levels.
		// Fall back to the tuning file, channel by channel, to preserve
		// backward compatibility. Remove once all helpers carry the data.
		ctx.Diag.Warningf("no black levels provided by camera sensor helper, please fix")

		b.red = valueOr(levelRed, haveRed, defaultBlackLevel)
		b.greenR = valueOr(levelGreenR, haveGreenR, defaultBlackLevel)
		b.greenB = valueOr(levelGreenB, haveGreenB, defaultBlackLevel)
		b.blue = valueOr(levelBlue, haveBlue, defaultBlackLevel)
	} else if tuningHasLevels {
		// Levels in the tuning file take precedence to avoid breaking
		// existing camera tunings. Deprecated and will be removed.
		ctx.Diag.Warningf("deprecated: black levels overwritten by tuning file")

		b.red = levelRed
		b.greenR = levelGreenR
		b.greenB = levelGreenB
		b.blue = levelBlue
	} else {
		b.red = blackLevel
		b.greenR = blackLevel
		b.greenB = blackLevel
		b.blue = blackLevel
	}

	b.active = true

	ctx.Diag.Debugf("black levels: red %d, green (red) %d, green (blue) %d, blue %d",
		b.red, b.greenR, b.greenB, b.blue)

	return nil
}

// Prepare writes the fixed black levels at stream start. Frames after 0, and
// any call before a successful Init, leave params untouched.
func (b *BlackLevelCorrection) Prepare(ctx *ipa.Context, frame uint32, frameCtx *ipa.FrameContext, params *ipa.Params) {
	if frame > 0 {
		return
	}
	if !b.active {
		return
	}

	params.BLC.AutoEnable = false
	// The registers hold 12-bit based black levels scaled down by 4 bits.
	params.BLC.FixedVal.R = uint16(b.red) >> 4
	params.BLC.FixedVal.Gr = uint16(b.greenR) >> 4
	params.BLC.FixedVal.Gb = uint16(b.greenB) >> 4
	params.BLC.FixedVal.B = uint16(b.blue) >> 4

	params.ModuleEnUpdate |= ipa.ModuleBLC
	params.ModuleEns |= ipa.ModuleBLC
	params.ModuleCfgUpdate |= ipa.ModuleBLC
}

func valueOr(v int16, ok bool, fallback int16) int16 {
	if ok {
		return v
	}
	return fallback
}
