package domain

import "errors"

// Inventory domain errors
var (
	// ErrProductNotFound is returned when a product lookup misses
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when an adjustment would take the
	// stock level below zero
	ErrInsufficientStock = errors.New("insufficient stock for this adjustment")

	// ErrInvalidQuantity is returned when a receive quantity is zero or negative
	ErrInvalidQuantity = errors.New("quantity must be a positive number")

	// ErrInvalidMovementType is returned when an unknown movement type is used
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrInvalidAdjustmentType is returned when an unknown adjustment type is used
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")
)
