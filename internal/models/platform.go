package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Platform is a prop-trading platform that pays traders out through us.
// Each platform takes its own cut before the payout lands.
type Platform string

const (
	PlatformTopstep  Platform = "TOPSTEP"
	PlatformMFFU     Platform = "MFFU"
	PlatformTradeify Platform = "TRADEIFY"
	PlatformUnknown  Platform = "UNKNOWN"
)

func PlatformFromString(s string) Platform {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TOPSTEP":
		return PlatformTopstep
	case "MFFU":
		return PlatformMFFU
	case "TRADEIFY":
		return PlatformTradeify
	default:
		return PlatformUnknown
	}
}

// FeeModel describes how a platform nets down a payout: a percentage kept
// by the trader and a flat processing fee taken off the top.
type FeeModel struct {
	TraderPct decimal.Decimal
	FlatFee   decimal.Decimal
}

var feeModels = map[Platform]FeeModel{
	PlatformTopstep:  {TraderPct: decimal.NewFromFloat(0.90), FlatFee: decimal.NewFromInt(20)},
	PlatformMFFU:     {TraderPct: decimal.NewFromFloat(0.85), FlatFee: decimal.NewFromInt(10)},
	PlatformTradeify: {TraderPct: decimal.NewFromFloat(0.90), FlatFee: decimal.NewFromInt(10)},
	PlatformUnknown:  {TraderPct: decimal.NewFromFloat(0.95), FlatFee: decimal.Zero},
}

func (p Platform) FeeModel() FeeModel {
	if fm, ok := feeModels[p]; ok {
		return fm
	}
	return feeModels[PlatformUnknown]
}

// ExpectedNet is what should actually arrive for a payout of base size.
func (p Platform) ExpectedNet(base decimal.Decimal) decimal.Decimal {
	fm := p.FeeModel()
	return base.Mul(fm.TraderPct).Sub(fm.FlatFee)
}

var matchLowerBoundPct = decimal.NewFromFloat(0.90)

// MatchRange is the band of observed amounts considered plausible for a
// payout: fees can only shave the expected amount down to 90% of it, and
// nothing above the gross base can arrive.
func (p Platform) MatchRange(base decimal.Decimal) (low, high decimal.Decimal) {
	expected := p.ExpectedNet(base)
	low = expected.Mul(matchLowerBoundPct)
	high = expected
	if base.GreaterThan(high) {
		high = base
	}
	return low, high
}

// MatchScore rates how close an observed amount is to the expected net,
// 1.0 being exact. Negative scores are clamped to zero.
func MatchScore(observed, expected decimal.Decimal) float64 {
	if expected.IsZero() {
		return 0
	}
	diff := observed.Sub(expected).Abs()
	score := decimal.NewFromInt(1).Sub(diff.Div(expected))
	f, _ := score.Float64()
	if f < 0 {
		return 0
	}
	return f
}
