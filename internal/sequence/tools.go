package sequence

// Tool names accepted by RunTool.
const (
	ToolIdentity          = "nucl_acid_identity"
	ToolComplement        = "complement"
	ToolReverseComplement = "reverse_complement"
	ToolTranscribe        = "transcribe"
	ToolReverse           = "reverse"
	ToolGCContent         = "gc_content"
)

// Tools lists every tool name in a stable order.
var Tools = []string{
	ToolIdentity,
	ToolComplement,
	ToolReverseComplement,
	ToolTranscribe,
	ToolReverse,
	ToolGCContent,
}

// Result holds the per-sequence output of a tool. Exactly one of Strings and
// Floats is set.
type Result struct {
	Strings []string
	Floats  []float64
}

// Len returns the number of values in the result.
func (r Result) Len() int {
	if r.Floats != nil {
		return len(r.Floats)
	}
	return len(r.Strings)
}

// RunTool applies tool to each of seqs. kind selects the complement
// alphabet for complement and reverse_complement. All sequences are
// identified first, so invalid input fails before any tool runs.
func RunTool(tool string, kind Kind, seqs ...string) (Result, error) {
	identity, err := Identify(seqs...)
	if err != nil {
		return Result{}, err
	}

	switch tool {
	case ToolIdentity:
		out := make([]string, len(seqs))
		for i := range seqs {
			out[i] = identity.String()
		}
		return Result{Strings: out}, nil
	case ToolComplement:
		return mapStrings(seqs, func(s string) (string, error) { return Complement(s, kind) })
	case ToolReverseComplement:
		return mapStrings(seqs, func(s string) (string, error) { return ReverseComplement(s, kind) })
	case ToolTranscribe:
		return mapStrings(seqs, Transcribe)
	case ToolReverse:
		return mapStrings(seqs, func(s string) (string, error) { return Reverse(s), nil })
	case ToolGCContent:
		out := make([]float64, len(seqs))
		for i, s := range seqs {
			out[i] = GCContent(s)
		}
		return Result{Floats: out}, nil
	default:
		return Result{}, &UnknownToolError{Tool: tool}
	}
}

func mapStrings(seqs []string, fn func(string) (string, error)) (Result, error) {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		v, err := fn(s)
		if err != nil {
			return Result{}, err
		}
		out[i] = v
	}
	return Result{Strings: out}, nil
}
