package catalog

import "errors"

var (
	// ErrDuplicateIdentifier is returned when a child is attached to a
	// parent that already holds a sibling with the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrNotFound is returned when a collection or item lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrUnknownAssetKey is returned when an asset lookup on an item
	// misses. Item asset sets are fixed at creation, so this is a
	// configuration error rather than a transient condition.
	ErrUnknownAssetKey = errors.New("unknown asset key")

	// ErrInvalidExtension is returned at the serialization boundary when
	// an extension field does not satisfy the document schema.
	ErrInvalidExtension = errors.New("invalid extension field")
)
