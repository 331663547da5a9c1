package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// DefaultDecimals is the fixed-point scale used by feeds unless a submission
// says otherwise: a price of $3000 is stored as 3000 * 10^8.
const DefaultDecimals = 8

// PriceFeed is the latest USD price for one whole unit of an asset.
type PriceFeed struct {
	Asset     string    `json:"asset"`
	Price     math.Int  `json:"price"`
	Decimals  uint32    `json:"decimals"`
	Validator string    `json:"validator"`
	UpdatedAt time.Time `json:"updated_at"`
	Height    int64     `json:"height"`
}

// Validate performs stateless consistency checks on a price feed
func (f PriceFeed) Validate() error {
	if f.Asset == "" {
		return fmt.Errorf("asset cannot be empty")
	}

	if f.Price.IsNil() || !f.Price.IsPositive() {
		return fmt.Errorf("price must be positive")
	}

	if f.Decimals == 0 || f.Decimals > 18 {
		return fmt.Errorf("decimals must be 1-18")
	}

	return nil
}
