package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when a character is not a nucleotide.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// MixedKindError is returned when DNA and RNA bases are combined.
type MixedKindError struct {
	Sequence string
}

func (e *MixedKindError) Error() string {
	return fmt.Sprintf("sequence %q mixes DNA and RNA", e.Sequence)
}

func (e *MixedKindError) IsSequenceError() {}

// UnknownKindError is returned by ParseKind.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown sequence kind %q, use DNA or RNA", e.Name)
}

func (e *UnknownKindError) IsSequenceError() {}

// UnknownToolError is returned by RunTool for an unsupported operation.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("there is no %s tool available", e.Tool)
}

func (e *UnknownToolError) IsSequenceError() {}
