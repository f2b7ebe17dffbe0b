// Package protein provides physico-chemical properties of protein sequences.
//
// Sequences are accepted in one-letter (encoding 1) or concatenated
// three-letter (encoding 3, e.g. "AlaGlyTrp") form and are converted to
// upper-case one-letter form before any calculation.
package protein

import (
	"sort"
	"strings"
)

// Supported encodings.
const (
	OneLetter   = 1
	ThreeLetter = 3
)

// WaterMass is the average mass of H2O in daltons, added once per chain.
const WaterMass = 18.01528

var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

// residueMass holds average residue masses (Da) within a chain.
var residueMass = map[byte]float64{
	'A': 71.0788, 'R': 156.1875, 'N': 114.1038, 'D': 115.0886, 'C': 103.1388,
	'E': 129.1155, 'Q': 128.1307, 'G': 57.0519, 'H': 137.1411, 'I': 113.1594,
	'L': 113.1594, 'K': 128.1741, 'M': 131.1926, 'F': 147.1766, 'P': 97.1167,
	'S': 87.0782, 'T': 101.1051, 'W': 186.2132, 'Y': 163.1760, 'V': 99.1326,
}

// kyteDoolittle is the Kyte-Doolittle hydropathy scale.
var kyteDoolittle = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// codons maps each residue to the RNA codon used for back-translation.
var codons = map[byte]string{
	'A': "GCU", 'R': "CGU", 'N': "AAU", 'D': "GAU", 'C': "UGU",
	'Q': "CAA", 'E': "GAA", 'G': "GGU", 'H': "CAU", 'I': "AUU",
	'L': "CUU", 'K': "AAA", 'M': "AUG", 'F': "UUU", 'P': "CCU",
	'S': "UCU", 'T': "ACU", 'W': "UGG", 'Y': "UAU", 'V': "GUU",
}

// IsProtein reports whether seq is a valid protein in the given encoding.
func IsProtein(seq string, encoding int) bool {
	_, err := ToOneLetter(seq, encoding)
	return err == nil
}

// ToOneLetter converts seq to upper-case one-letter form.
func ToOneLetter(seq string, encoding int) (string, error) {
	if len(seq) == 0 {
		return "", &EmptySequenceError{}
	}

	switch encoding {
	case OneLetter:
		upper := strings.ToUpper(seq)
		for i := 0; i < len(upper); i++ {
			if _, ok := residueMass[upper[i]]; !ok {
				return "", &NotProteinError{Sequence: seq}
			}
		}
		return upper, nil
	case ThreeLetter:
		if len(seq)%3 != 0 {
			return "", &NotProteinError{Sequence: seq}
		}
		var sb strings.Builder
		sb.Grow(len(seq) / 3)
		upper := strings.ToUpper(seq)
		for i := 0; i < len(upper); i += 3 {
			aa, ok := threeToOne[upper[i:i+3]]
			if !ok {
				return "", &NotProteinError{Sequence: seq}
			}
			sb.WriteByte(aa)
		}
		return sb.String(), nil
	default:
		return "", &UnknownEncodingError{Encoding: encoding}
	}
}

// Mass returns the average molecular mass of the chain in daltons.
func Mass(seq string) float64 {
	total := WaterMass
	for i := 0; i < len(seq); i++ {
		total += residueMass[seq[i]]
	}
	return total
}

// AverageHydrophobicity returns the mean Kyte-Doolittle hydropathy.
func AverageHydrophobicity(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(seq); i++ {
		sum += kyteDoolittle[seq[i]]
	}
	return sum / float64(len(seq))
}

// Characteristic returns the percentage of each residue present in seq.
func Characteristic(seq string) map[string]float64 {
	counts := make(map[string]int)
	for i := 0; i < len(seq); i++ {
		counts[string(seq[i])]++
	}

	percent := make(map[string]float64, len(counts))
	for aa, n := range counts {
		percent[aa] = float64(n) / float64(len(seq)) * 100
	}
	return percent
}

// Residues returns the residues of a composition in alphabetical order.
func Residues(composition map[string]float64) []string {
	keys := make([]string, 0, len(composition))
	for k := range composition {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FindSite returns the 1-based start of every occurrence of site in seq,
// overlaps included. Matching ignores case.
func FindSite(seq, site string) ([]int, error) {
	if len(site) == 0 {
		return nil, &EmptySequenceError{}
	}

	seq, site = strings.ToUpper(seq), strings.ToUpper(site)
	positions := make([]int, 0)
	for i := 0; i+len(site) <= len(seq); i++ {
		if seq[i:i+len(site)] == site {
			positions = append(positions, i+1)
		}
	}
	return positions, nil
}

// MRNA back-translates seq to an mRNA using one fixed codon per residue.
func MRNA(seq string) string {
	var sb strings.Builder
	sb.Grow(len(seq) * 3)
	for i := 0; i < len(seq); i++ {
		sb.WriteString(codons[seq[i]])
	}
	return sb.String()
}
