package framework

import "errors"

// Sentinel errors for asset registration.
var (
	// ErrTypeRequired is returned by Enqueue and Attributes when the
	// asset type was neither discovered from the file nor set explicitly.
	ErrTypeRequired = errors.New("asset type required")

	// Manifest loading errors.
	ErrManifestNotFound = errors.New("asset manifest not found")
	ErrManifestParse    = errors.New("failed to parse asset manifest")
	ErrMissingHandle    = errors.New("manifest asset needs a handle")
	ErrMissingSrc       = errors.New("manifest asset needs a src")
	ErrUnknownType      = errors.New("unknown asset type")
	ErrUnknownLocation  = errors.New("unknown location")
)
