package types

// Event types for the jobs module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Lifecycle events
	EventTypeJobPosted       = "job_posted"
	EventTypeJobAccepted     = "job_accepted"
	EventTypeResultSubmitted = "job_result_submitted"
	EventTypeJobPaid         = "job_paid"

	// Escrow events
	EventTypeEscrowLocked    = "job_escrow_locked"
	EventTypeEscrowReleased  = "job_escrow_released"
	EventTypeDepositRefunded = "job_deposit_refunded"
)

// Event attribute keys for the jobs module
const (
	AttributeKeyJobID     = "job_id"
	AttributeKeyRequester = "requester"
	AttributeKeyProvider  = "provider"
	AttributeKeyRewardUsd = "reward_usd"
	AttributeKeyAmount    = "amount"
	AttributeKeyRefund    = "refund"
	AttributeKeyDataURL   = "data_url"
	AttributeKeyScriptURL = "script_url"
	AttributeKeyResultURL = "result_url"
	AttributeKeyStatus    = "status"
	AttributeKeyPrice     = "price"
)
