package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOneLetter(t *testing.T) {
	tests := []struct {
		name     string
		seq      string
		encoding int
		want     string
		wantErr  interface{}
	}{
		{name: "one letter", seq: "mkT", encoding: OneLetter, want: "MKT"},
		{name: "three letter", seq: "AlaGlyTRP", encoding: ThreeLetter, want: "AGW"},
		{name: "bad residue", seq: "MKB", encoding: OneLetter, wantErr: &NotProteinError{}},
		{name: "bad triplet", seq: "AlaXyz", encoding: ThreeLetter, wantErr: &NotProteinError{}},
		{name: "ragged triplets", seq: "AlaGl", encoding: ThreeLetter, wantErr: &NotProteinError{}},
		{name: "empty", seq: "", encoding: OneLetter, wantErr: &EmptySequenceError{}},
		{name: "unknown encoding", seq: "MKT", encoding: 2, wantErr: &UnknownEncodingError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToOneLetter(tt.seq, tt.encoding)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsProtein(t *testing.T) {
	assert.True(t, IsProtein("MKTLLV", OneLetter))
	assert.True(t, IsProtein("MetLys", ThreeLetter))
	assert.False(t, IsProtein("MK1", OneLetter))
}

func TestMass(t *testing.T) {
	// Gly-Gly: 2 * 57.0519 + water
	assert.InDelta(t, 132.11908, Mass("GG"), 0.0001)
	assert.InDelta(t, WaterMass, Mass(""), 0.0001)
}

func TestAverageHydrophobicity(t *testing.T) {
	assert.InDelta(t, 4.5, AverageHydrophobicity("II"), 0.0001)
	assert.InDelta(t, (1.8-4.5)/2, AverageHydrophobicity("AR"), 0.0001)
	assert.Equal(t, 0.0, AverageHydrophobicity(""))
}

func TestIsoelectricPoint(t *testing.T) {
	acidic := IsoelectricPoint("DDDDEEEE")
	basic := IsoelectricPoint("KKKKRRRR")
	neutral := IsoelectricPoint("GGGG")

	assert.Less(t, acidic, 4.5)
	assert.Greater(t, basic, 10.0)
	assert.Greater(t, neutral, acidic)
	assert.Less(t, neutral, basic)
	// Terminal groups only: midpoint of the N- and C-terminal pKa values.
	assert.InDelta(t, (pKaNTerm+pKaCTerm)/2, neutral, 0.02)
}

func TestCharacteristic(t *testing.T) {
	comp := Characteristic("AAGT")
	assert.InDelta(t, 50.0, comp["A"], 0.0001)
	assert.InDelta(t, 25.0, comp["G"], 0.0001)
	assert.InDelta(t, 25.0, comp["T"], 0.0001)
	assert.Equal(t, []string{"A", "G", "T"}, Residues(comp))
}

func TestFindSite(t *testing.T) {
	got, err := FindSite("MKAAAK", "aa")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	got, err = FindSite("MK", "W")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = FindSite("MK", "")
	require.Error(t, err)
}

func TestMRNA(t *testing.T) {
	assert.Equal(t, "AUGAAAUGG", MRNA("MKW"))
}

func TestRunTool(t *testing.T) {
	res, err := RunTool(ToolMass, ThreeLetter, "", "GlyGly")
	require.NoError(t, err)
	require.Len(t, res.Floats, 1)
	assert.InDelta(t, 132.11908, res.Floats[0], 0.0001)

	res, err = RunTool(ToolFindSite, OneLetter, "K", "MKK", "AKA")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 3}, {2}}, res.Sites)

	res, err = RunTool(ToolMRNA, OneLetter, "", "M")
	require.NoError(t, err)
	assert.Equal(t, []string{"AUG"}, res.Strings)

	res, err = RunTool(ToolCharacteristic, OneLetter, "", "MM")
	require.NoError(t, err)
	require.Len(t, res.Compositions, 1)
	assert.InDelta(t, 100.0, res.Compositions[0]["M"], 0.0001)

	res, err = RunTool(ToolHydrophobicity, OneLetter, "", "I")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4.5}, res.Floats, 0.0001)

	res, err = RunTool(ToolIsoelectricPoint, OneLetter, "", "GG")
	require.NoError(t, err)
	require.Len(t, res.Floats, 1)
}

func TestRunToolErrors(t *testing.T) {
	_, err := RunTool("fold", OneLetter, "", "MKT")
	require.Error(t, err)
	assert.IsType(t, &UnknownToolError{}, err)

	_, err = RunTool(ToolMass, OneLetter, "", "MKT", "XYZ1")
	require.Error(t, err)
	assert.IsType(t, &NotProteinError{}, err)
}
