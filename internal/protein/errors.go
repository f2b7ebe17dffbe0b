package protein

import "fmt"

// ProteinError is the base error type for protein operations.
type ProteinError interface {
	error
	IsProteinError()
}

// EmptySequenceError is returned for an empty sequence or site.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "protein sequence must have at least one residue"
}
func (e *EmptySequenceError) IsProteinError() {}

// NotProteinError is returned when a sequence is not a protein in the
// requested encoding.
type NotProteinError struct {
	Sequence string
}

func (e *NotProteinError) Error() string {
	return fmt.Sprintf("%q is not a protein sequence", e.Sequence)
}
func (e *NotProteinError) IsProteinError() {}

// UnknownEncodingError is returned for an encoding other than 1 or 3.
type UnknownEncodingError struct {
	Encoding int
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("unknown encoding %d, use 1 or 3", e.Encoding)
}
func (e *UnknownEncodingError) IsProteinError() {}

// UnknownToolError is returned by RunTool for an unsupported operation.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("%s operation is not available", e.Tool)
}
func (e *UnknownToolError) IsProteinError() {}
