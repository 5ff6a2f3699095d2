package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Material errors
	ErrMsgUnknownMaterial = "unknown material"

	// Catalog errors
	ErrMsgEnchantmentNotFound = "enchantment not found"
	ErrMsgDuplicateEnchantID  = "duplicate enchantment id"

	// Table config errors
	ErrMsgInvalidTableConfig = "invalid enchantment table configuration"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownMaterial     = errors.New(ErrMsgUnknownMaterial)
	ErrEnchantmentNotFound = errors.New(ErrMsgEnchantmentNotFound)
	ErrDuplicateEnchantID  = errors.New(ErrMsgDuplicateEnchantID)
	ErrInvalidTableConfig  = errors.New(ErrMsgInvalidTableConfig)
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
)
