package errors

import (
	"math"
	"unicode"
)

// Upper bounds accepted for user-supplied render parameters.
const (
	maxDimension    = 20000.0
	maxPathSegments = 64
	maxSegmentLen   = 256
)

// ValidateDimension validates a frame dimension (width or height) in pixels.
//
// The validation rules:
//   - Must be a finite number
//   - Must be strictly positive
//   - Maximum of 20000 pixels
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	if v > maxDimension {
		return New(ErrCodeInvalidInput, "%s too large (max %.0f)", name, maxDimension)
	}
	return nil
}

// ValidateEpsilon validates the small-angle visibility threshold in radians.
// Zero disables pruning; values at or above pi would hide almost everything.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || eps < 0 {
		return New(ErrCodeInvalidInput, "epsilon must be a non-negative number")
	}
	if eps >= math.Pi {
		return New(ErrCodeInvalidInput, "epsilon must be below pi radians, got %g", eps)
	}
	return nil
}

// ValidateNodePath validates a path of node names addressed from the root,
// as used by the hover command and the HTTP hover endpoint.
//
// Validation rules:
//   - At most 64 segments
//   - No empty segments
//   - No control characters
//   - Maximum segment length of 256 characters
//
// An empty path is valid and addresses the root itself.
func ValidateNodePath(segments []string) error {
	if len(segments) > maxPathSegments {
		return New(ErrCodeInvalidPath, "path too deep (max %d segments)", maxPathSegments)
	}
	for i, s := range segments {
		if s == "" {
			return New(ErrCodeInvalidPath, "path segment %d is empty", i)
		}
		if len(s) > maxSegmentLen {
			return New(ErrCodeInvalidPath, "path segment %d too long (max %d characters)", i, maxSegmentLen)
		}
		for _, r := range s {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidPath, "path segment %d contains control characters", i)
			}
		}
	}
	return nil
}
