package registry

import (
	"github.com/bitfolio/bitfolio/core"
)

func New(host core.Host) core.Registry {
	return &service{
		host: host,
		descriptors: []core.ProviderDescriptor{
			{
				ID:          core.ProviderXverse,
				Name:        "Xverse",
				Description: "Multi-chain Bitcoin & Stacks wallet",
				Capabilities: []core.AssetClass{
					core.AssetBitcoin, core.AssetStacks, core.AssetOrdinals, core.AssetRunes,
				},
			},
			{
				ID:          core.ProviderLeather,
				Name:        "Leather",
				Description: "Bitcoin & Stacks wallet",
				Capabilities: []core.AssetClass{
					core.AssetBitcoin, core.AssetStacks,
				},
			},
			{
				ID:          core.ProviderUnisat,
				Name:        "Unisat",
				Description: "Bitcoin wallet with Ordinals support",
				Capabilities: []core.AssetClass{
					core.AssetBitcoin, core.AssetOrdinals,
				},
			},
		},
	}
}

type service struct {
	host        core.Host
	descriptors []core.ProviderDescriptor
}

func (s *service) List() []core.ProviderDescriptor {
	out := make([]core.ProviderDescriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Detect probes the host for the provider's handle. A probe must never fail
// loudly; any panic counts as not detected.
func (s *service) Detect(id core.ProviderID) (detected bool) {
	defer func() {
		if recover() != nil {
			detected = false
		}
	}()

	switch id {
	case core.ProviderXverse:
		return s.host.Xverse() != nil
	case core.ProviderLeather:
		return s.host.Leather() != nil
	case core.ProviderUnisat:
		return s.host.Unisat() != nil
	default:
		return false
	}
}

func (s *service) Capabilities(id core.ProviderID) []core.AssetClass {
	for _, d := range s.descriptors {
		if d.ID == id {
			out := make([]core.AssetClass, len(d.Capabilities))
			copy(out, d.Capabilities)
			return out
		}
	}
	return nil
}
