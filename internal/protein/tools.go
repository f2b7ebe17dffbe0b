package protein

// Tool names accepted by RunTool.
const (
	ToolCharacteristic   = "get_seq_characteristic"
	ToolFindSite         = "find_site"
	ToolMass             = "calculate_protein_mass"
	ToolHydrophobicity   = "calculate_average_hydrophobicity"
	ToolIsoelectricPoint = "calculate_isoelectric_point"
	ToolMRNA             = "get_mrna"
)

// Tools lists every tool name in a stable order.
var Tools = []string{
	ToolCharacteristic,
	ToolFindSite,
	ToolMass,
	ToolHydrophobicity,
	ToolIsoelectricPoint,
	ToolMRNA,
}

// Result holds the per-sequence output of a tool. Only the field matching
// the tool is set.
type Result struct {
	Strings      []string             `json:"strings,omitempty"`
	Floats       []float64            `json:"floats,omitempty"`
	Sites        [][]int              `json:"sites,omitempty"`
	Compositions []map[string]float64 `json:"compositions,omitempty"`
}

// RunTool applies tool to every sequence after converting it from encoding
// to one-letter form. site is used by find_site and is always one-letter.
// Every sequence is validated before any tool runs.
func RunTool(tool string, encoding int, site string, seqs ...string) (Result, error) {
	converted := make([]string, len(seqs))
	for i, s := range seqs {
		one, err := ToOneLetter(s, encoding)
		if err != nil {
			return Result{}, err
		}
		converted[i] = one
	}

	var res Result
	switch tool {
	case ToolCharacteristic:
		for _, s := range converted {
			res.Compositions = append(res.Compositions, Characteristic(s))
		}
	case ToolFindSite:
		for _, s := range converted {
			positions, err := FindSite(s, site)
			if err != nil {
				return Result{}, err
			}
			res.Sites = append(res.Sites, positions)
		}
	case ToolMass:
		res.Floats = mapFloats(converted, Mass)
	case ToolHydrophobicity:
		res.Floats = mapFloats(converted, AverageHydrophobicity)
	case ToolIsoelectricPoint:
		res.Floats = mapFloats(converted, IsoelectricPoint)
	case ToolMRNA:
		for _, s := range converted {
			res.Strings = append(res.Strings, MRNA(s))
		}
	default:
		return Result{}, &UnknownToolError{Tool: tool}
	}
	return res, nil
}

func mapFloats(seqs []string, fn func(string) float64) []float64 {
	out := make([]float64, len(seqs))
	for i, s := range seqs {
		out[i] = fn(s)
	}
	return out
}
