package types

import (
	"fmt"
)

// Params defines the parameters for the oracle module
type Params struct {
	// DefaultDecimals is applied to submissions that omit a scale
	DefaultDecimals uint32 `json:"default_decimals"`
}

// DefaultParams returns the default oracle module parameters
func DefaultParams() Params {
	return Params{
		DefaultDecimals: DefaultDecimals,
	}
}

// Validate performs basic validation of the parameters
func (p Params) Validate() error {
	if p.DefaultDecimals == 0 || p.DefaultDecimals > 18 {
		return fmt.Errorf("default decimals must be 1-18")
	}
	return nil
}
