// ============================================================================
// tzgrid - Terminal time zone grid
// ============================================================================
//
// Package:     tzerror
// Description: Error codes for classifying tzgrid failures
// Author:      dpb1
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tzerror

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Zone resolution
	CodeUnresolvedZone Code = "UNRESOLVED_ZONE"
	CodeUnknownZone    Code = "UNKNOWN_ZONE"

	// Environment and collaborators
	CodeConfigRead Code = "CONFIG_READ"
	CodeGeometry   Code = "GEOMETRY"
	CodeGeoData    Code = "GEO_DATA"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInvalidInput, CodeUnresolvedZone, CodeUnknownZone,
		CodeConfigRead, CodeGeometry, CodeGeoData:
		return true
	}
	return false
}

// Soft reports whether errors with this code are absorbed with a fallback
// instead of terminating the invocation.
func (c Code) Soft() bool {
	return c == CodeConfigRead || c == CodeGeometry
}
