package protein

import "math"

// pKa values of ionisable groups (EMBOSS scale).
const (
	pKaNTerm = 8.6
	pKaCTerm = 3.6
)

var positivePKa = map[byte]float64{'K': 10.8, 'R': 12.5, 'H': 6.5}

var negativePKa = map[byte]float64{'D': 3.9, 'E': 4.1, 'C': 8.5, 'Y': 10.1}

// netCharge returns the net charge of seq at the given pH.
func netCharge(seq string, pH float64) float64 {
	positive := 1 / (1 + math.Pow(10, pH-pKaNTerm))
	negative := 1 / (1 + math.Pow(10, pKaCTerm-pH))

	for i := 0; i < len(seq); i++ {
		if pka, ok := positivePKa[seq[i]]; ok {
			positive += 1 / (1 + math.Pow(10, pH-pka))
		}
		if pka, ok := negativePKa[seq[i]]; ok {
			negative += 1 / (1 + math.Pow(10, pka-pH))
		}
	}
	return positive - negative
}

// IsoelectricPoint returns the pH (to 0.01) at which seq carries no net charge.
func IsoelectricPoint(seq string) float64 {
	low, high := 0.0, 14.0
	for high-low > 0.01 {
		mid := (low + high) / 2
		if netCharge(seq, mid) > 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return math.Round((low+high)/2*100) / 100
}
