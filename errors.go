package xmldoc2html

import "errors"

// Sentinel errors for conversion operations.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrParse         = errors.New("malformed XML")
	ErrReadInput     = errors.New("failed to read input file")
	ErrWriteOutput   = errors.New("failed to write output file")
)
