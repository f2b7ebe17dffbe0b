// Package sequence provides nucleic-acid transformations on plain strings.
//
// Every operation preserves letter case: complementing "atGC" yields "taCG".
// A sequence made only of A, C and G is compatible with both DNA and RNA;
// T marks DNA and U marks RNA.
package sequence

import (
	"strings"
)

// Kind is the nucleic-acid type of a sequence.
type Kind int

const (
	// DNA uses A, C, G, T
	DNA Kind = iota
	// RNA uses A, C, G, U
	RNA
)

func (k Kind) String() string {
	switch k {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	default:
		return "Unknown"
	}
}

// ParseKind parses "DNA" or "RNA" (case-insensitive). An empty string is DNA.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "", "DNA":
		return DNA, nil
	case "RNA":
		return RNA, nil
	default:
		return DNA, &UnknownKindError{Name: s}
	}
}

// complements is keyed by the output kind. T and U both pair with A, so a
// sequence of either kind can be complemented into either alphabet.
var complements = map[Kind]map[rune]rune{
	DNA: {'A': 'T', 'T': 'A', 'U': 'A', 'G': 'C', 'C': 'G', 'a': 't', 't': 'a', 'u': 'a', 'g': 'c', 'c': 'g'},
	RNA: {'A': 'U', 'T': 'A', 'U': 'A', 'G': 'C', 'C': 'G', 'a': 'u', 't': 'a', 'u': 'a', 'g': 'c', 'c': 'g'},
}

// classify returns the kind a single sequence commits to. ok is false when
// the sequence has neither T nor U.
func classify(seq string) (kind Kind, ok bool, err error) {
	if len(seq) == 0 {
		return DNA, false, &EmptySequenceError{}
	}

	hasT, hasU := false, false
	for i, b := range seq {
		switch b {
		case 'A', 'C', 'G', 'a', 'c', 'g':
		case 'T', 't':
			hasT = true
		case 'U', 'u':
			hasU = true
		default:
			return DNA, false, &InvalidBaseError{Position: i, Found: b}
		}
	}

	switch {
	case hasT && hasU:
		return DNA, false, &MixedKindError{Sequence: seq}
	case hasU:
		return RNA, true, nil
	case hasT:
		return DNA, true, nil
	default:
		return DNA, false, nil
	}
}

// Identify reports the common kind of seqs. Sequences without T or U adopt
// the kind of the others; if none commits, the result is DNA.
func Identify(seqs ...string) (Kind, error) {
	result, committed := DNA, false
	for _, s := range seqs {
		kind, ok, err := classify(s)
		if err != nil {
			return DNA, err
		}
		if !ok {
			continue
		}
		if committed && kind != result {
			return DNA, &MixedKindError{Sequence: s}
		}
		result, committed = kind, true
	}
	return result, nil
}

// Validate checks that seq is a nucleic acid compatible with kind.
func Validate(seq string, kind Kind) error {
	got, ok, err := classify(seq)
	if err != nil {
		return err
	}
	if ok && got != kind {
		return &MixedKindError{Sequence: seq}
	}
	return nil
}

// Complement returns the base-by-base complement of seq written in the
// alphabet of kind, e.g. the DNA complement of "AUGC" is "TACG".
func Complement(seq string, kind Kind) (string, error) {
	if _, _, err := classify(seq); err != nil {
		return "", err
	}

	table := complements[kind]
	var sb strings.Builder
	sb.Grow(len(seq))
	for _, b := range seq {
		sb.WriteRune(table[b])
	}
	return sb.String(), nil
}

// Reverse returns seq read backwards.
func Reverse(seq string) string {
	runes := []rune(seq)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		runes[i], runes[n-1-i] = runes[n-1-i], runes[i]
	}
	return string(runes)
}

// ReverseComplement returns the reverse of the complement of seq.
func ReverseComplement(seq string, kind Kind) (string, error) {
	comp, err := Complement(seq, kind)
	if err != nil {
		return "", err
	}
	return Reverse(comp), nil
}

// Transcribe converts DNA to RNA (T -> U, t -> u).
func Transcribe(seq string) (string, error) {
	if err := Validate(seq, DNA); err != nil {
		return "", err
	}
	return strings.NewReplacer("T", "U", "t", "u").Replace(seq), nil
}

// GCContent returns the percentage (0-100) of G and C bases in seq.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0.0
	}

	gc := 0
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}
