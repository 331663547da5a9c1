package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultBondDenom    = "uloom"
	DefaultPriceAsset   = "loom"
	DefaultMaxUrlLength = 512
)

// DefaultMinRewardUsd is $0.01 in fixed-point USD
var DefaultMinRewardUsd = math.NewInt(1_000_000)

// Params defines the parameters for the jobs module
type Params struct {
	// BondDenom is the native denom escrowed for job rewards
	BondDenom string `json:"bond_denom"`

	// PriceAsset is the oracle asset symbol quoted in USD per whole token
	PriceAsset string `json:"price_asset"`

	// MaxUrlLength caps data/script/result url sizes
	MaxUrlLength uint32 `json:"max_url_length"`

	// MinRewardUsd rejects dust rewards that would round to zero collateral
	MinRewardUsd math.Int `json:"min_reward_usd"`
}

// DefaultParams returns the default jobs module parameters
func DefaultParams() Params {
	return Params{
		BondDenom:    DefaultBondDenom,
		PriceAsset:   DefaultPriceAsset,
		MaxUrlLength: DefaultMaxUrlLength,
		MinRewardUsd: DefaultMinRewardUsd,
	}
}

// Validate performs basic validation of the parameters
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.BondDenom); err != nil {
		return fmt.Errorf("invalid bond denom: %w", err)
	}

	if p.PriceAsset == "" {
		return fmt.Errorf("price asset cannot be empty")
	}

	if p.MaxUrlLength == 0 {
		return fmt.Errorf("max url length must be positive")
	}

	if p.MinRewardUsd.IsNil() || p.MinRewardUsd.IsNegative() {
		return fmt.Errorf("min reward usd cannot be negative")
	}

	return nil
}
