package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Parameter validation error messages
	ErrMsgInvalidLevels   = "Invalid levels parameter"
	ErrMsgInvalidSeed     = "Invalid seed parameter"
	ErrMsgInvalidTreasure = "Invalid treasure parameter"

	// Enchanting operation error messages
	ErrMsgEnchantItemFailed       = "Failed to enchant item"
	ErrMsgPreviewCandidatesFailed = "Failed to preview candidates"
	ErrMsgPutEnchantmentFailed    = "Failed to store enchantment"
	ErrMsgRemoveEnchantmentFailed = "Failed to remove enchantment"
	ErrMsgPutEnchantabilityFailed = "Failed to store enchantability"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgEnchantmentStoredSuccess    = "Enchantment stored successfully"
	MsgEnchantmentRemovedSuccess   = "Enchantment removed successfully"
	MsgEnchantabilityStoredSuccess = "Enchantability stored successfully"
)
