package pricing

import "coatingshop/internal/domain/entities"

// ServiceStrategy prices the additional services on top of the coated subtotal.
type ServiceStrategy interface {
	Name() string
	Surcharge(coatedSubtotal float64, s entities.AdditionalServices) float64
}

const (
	ModePercentage = "percentage"
	ModeFlatFee    = "flat_fee"
)

const (
	SandblastingPercent = 15.0
	PrimingPercent      = 10.0
	RushOrderPercent    = 25.0

	SandblastingFlatFee = 50.0
	PrimingFlatFee      = 35.0
)

// PercentageServices is the canonical rule: every enabled service adds a
// percentage of the coated subtotal, accumulated additively.
type PercentageServices struct{}

func (PercentageServices) Name() string { return ModePercentage }

func (PercentageServices) Surcharge(coated float64, s entities.AdditionalServices) float64 {
	surcharge := 0.0
	if s.Sandblasting {
		surcharge += coated * SandblastingPercent / 100
	}
	if s.Priming {
		surcharge += coated * PrimingPercent / 100
	}
	if s.RushOrder {
		surcharge += coated * RushOrderPercent / 100
	}
	return surcharge
}

// FlatFeeServices is the rule used by the admin screens: sandblasting and
// priming are fixed fees per quote. Rush orders have no flat fee there and keep
// their percentage.
type FlatFeeServices struct{}

func (FlatFeeServices) Name() string { return ModeFlatFee }

func (FlatFeeServices) Surcharge(coated float64, s entities.AdditionalServices) float64 {
	surcharge := 0.0
	if s.Sandblasting {
		surcharge += SandblastingFlatFee
	}
	if s.Priming {
		surcharge += PrimingFlatFee
	}
	if s.RushOrder {
		surcharge += coated * RushOrderPercent / 100
	}
	return surcharge
}

// StrategyFor resolves a configured mode. Anything unknown is the canonical percentage rule.
func StrategyFor(mode string) ServiceStrategy {
	if mode == ModeFlatFee {
		return FlatFeeServices{}
	}
	return PercentageServices{}
}
