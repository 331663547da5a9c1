package types

import (
	"fmt"
)

// GenesisState defines the oracle module's genesis state
type GenesisState struct {
	Params Params      `json:"params"`
	Feeds  []PriceFeed `json:"feeds"`
}

// DefaultGenesis returns the default genesis state for the oracle module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Feeds:  []PriceFeed{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[string]bool)
	for _, feed := range gs.Feeds {
		if seen[feed.Asset] {
			return fmt.Errorf("duplicate feed for asset %s", feed.Asset)
		}
		seen[feed.Asset] = true

		if err := feed.Validate(); err != nil {
			return fmt.Errorf("invalid feed %s: %w", feed.Asset, err)
		}
	}

	return nil
}
