package types

// Event types for the oracle module
const (
	EventTypePriceUpdated = "oracle_price_updated"
)

// Event attribute keys for the oracle module
const (
	AttributeKeyAsset     = "asset"
	AttributeKeyPrice     = "price"
	AttributeKeyDecimals  = "decimals"
	AttributeKeyValidator = "validator"
)
