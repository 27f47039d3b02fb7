package algorithms

import "github.com/banshee-data/ipa-control/internal/ipa"

// Register adds every algorithm this build provides to r. The host calls it
// deliberately at startup, before any camera opens; nothing registers itself
// as a package-init side effect.
func Register(r *ipa.Registry) {
	r.MustRegister("BlackLevelCorrection", func() ipa.Algorithm {
		return NewBlackLevelCorrection()
	})
}
