// Package report renders fit results as human-readable text.
//
// Formatting is kept apart from the numeric code in package fit: a Result is
// computed first and rendered afterwards, so callers that only need numbers
// never pay for formatting.
//
// The default layout is
//
//	m = 1.940000 +- 0.044721
//	q = 0.150000 +- 0.122474
//	chinorm (2 ndof) = 4.100000
//	r =
//		0.100000
//		-1.300000
//		2.300000
//		-1.100000
//
// With WithSignificantDigits each uncertainty is rounded to the requested
// number of significant digits and its value to the same decimal place, the
// usual convention for quoting measurements.
package report
