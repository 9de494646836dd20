package platform

import "runtime"

// NewPlatform returns the platform backed by the real OS.
func NewPlatform() Platform {
	return &HostPlatform{
		BasePlatform: NewBasePlatform(),
		info: Info{
			OS:           runtime.GOOS,
			Architecture: runtime.GOARCH,
		},
	}
}

// HostPlatform is the Platform for the machine the helper runs on.
type HostPlatform struct {
	*BasePlatform
	info Info
}

func (hp *HostPlatform) HostInfo() Info {
	return hp.info
}
