package ipa

// Module identifies one configurable ISP hardware block. The update masks in
// Params carry one bit per module.
type Module uint32

const (
	// ModuleBLC is the black level correction block.
	ModuleBLC Module = 1 << iota
)

// BLCFixedVal holds the per-channel black levels written to the ISP. The
// registers are 4 bits narrower than the sensor-native 12-bit scale, so the
// values here are the calibrated levels shifted right by 4.
type BLCFixedVal struct {
	R  uint16
	Gr uint16
	Gb uint16
	B  uint16
}

// BLCConfig mirrors the ISP's black level correction registers.
type BLCConfig struct {
	// AutoEnable selects hardware measurement of the black level from the
	// sensor's optical dark region instead of the fixed values.
	AutoEnable bool
	FixedVal   BLCFixedVal
}

// Params is the hardware parameter buffer each algorithm's Prepare merges
// into. The consumer applies only the modules whose bits are set:
// ModuleEnUpdate flags a change to a module's enable state, ModuleCfgUpdate a
// change to its configuration, and ModuleEns carries the enable state itself.
// Both update bits must be set whenever a module's fixed values are written.
type Params struct {
	BLC BLCConfig

	ModuleEnUpdate  Module
	ModuleEns       Module
	ModuleCfgUpdate Module
}
