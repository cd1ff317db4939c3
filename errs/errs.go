// Package errs defines the sentinel errors returned by linfit packages.
//
// Errors are returned wrapped with context; match them with errors.Is. Every
// input validation failure also matches ErrInvalidInput.
package errs

import "errors"

// Fit input errors.
var (
	// ErrInvalidInput is matched by every sample validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLengthMismatch indicates x, y, dy (and dx) have different lengths.
	ErrLengthMismatch = errors.New("sample length mismatch")
	// ErrInsufficientDOF indicates fewer than three samples, leaving no
	// degrees of freedom for the normalized chi-squared.
	ErrInsufficientDOF = errors.New("insufficient degrees of freedom")
	// ErrNonPositiveDY indicates a y uncertainty that is zero or negative.
	ErrNonPositiveDY = errors.New("y uncertainty must be positive")
	// ErrNegativeDX indicates a negative x uncertainty.
	ErrNegativeDX = errors.New("x uncertainty must not be negative")
	// ErrNonFiniteInput indicates a NaN or infinite sample value.
	ErrNonFiniteInput = errors.New("sample value is NaN or infinite")
)

// Fit computation errors.
var (
	// ErrDegenerateFit indicates a singular normal-equations matrix, e.g. all x equal.
	ErrDegenerateFit = errors.New("degenerate fit")
	// ErrNonFiniteResult indicates NaN or infinity in an intermediate or output value.
	ErrNonFiniteResult = errors.New("fit produced NaN or infinite value")
)

// ErrInvalidOption is returned when a functional option receives an invalid value.
var ErrInvalidOption = errors.New("invalid option")

// Dataset format errors.
var (
	// ErrInvalidHeaderSize indicates the data is shorter than a dataset header.
	ErrInvalidHeaderSize = errors.New("invalid dataset header size")
	// ErrInvalidHeaderFlags indicates a bad magic number or column layout.
	ErrInvalidHeaderFlags = errors.New("invalid dataset header flags")
	// ErrInvalidPayloadSize indicates the payload does not match the header sizes.
	ErrInvalidPayloadSize = errors.New("invalid dataset payload size")
	// ErrChecksumMismatch indicates the decompressed payload failed verification.
	ErrChecksumMismatch = errors.New("dataset checksum mismatch")
	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
