package genbank

import (
	"errors"
	"fmt"
)

// Error is implemented by every error returned from this package.
type Error interface {
	error
	IsGenBankError()
}

// ErrGeneNotFound matches any *GeneNotFoundError with errors.Is.
var ErrGeneNotFound = errors.New("gene not found")

// GeneNotFoundError is returned when a requested gene has no CDS in the record.
type GeneNotFoundError struct {
	Gene string
}

func (e *GeneNotFoundError) Error() string {
	return fmt.Sprintf("gene %q not found in GenBank record", e.Gene)
}

func (e *GeneNotFoundError) Is(target error) bool {
	return target == ErrGeneNotFound
}

func (e *GeneNotFoundError) IsGenBankError() {}

// InvalidWindowError is returned for a negative neighbour count.
type InvalidWindowError struct {
	Before int
	After  int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("neighbour window must be non-negative, got before=%d after=%d", e.Before, e.After)
}

func (e *InvalidWindowError) IsGenBankError() {}
