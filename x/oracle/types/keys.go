package types

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for oracle
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// KVStore key prefixes
var (
	ParamsKey = []byte{0x01}

	// PriceFeedKeyPrefix is the prefix for price feeds, keyed by asset
	PriceFeedKeyPrefix = []byte{0x10}
)

// PriceFeedKey returns the store key for an asset's price feed
func PriceFeedKey(asset string) []byte {
	return append(PriceFeedKeyPrefix, []byte(asset)...)
}
