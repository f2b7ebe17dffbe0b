package genbank

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveCDS() ([]CDSID, map[string]CDSID) {
	order := []CDSID{"CDS0", "CDS1", "CDS2", "CDS3", "CDS4"}
	geneCDS := map[string]CDSID{
		"a": "CDS0",
		"b": "CDS1",
		"c": "CDS2",
		"d": "CDS3",
		"e": "CDS4",
	}
	return order, geneCDS
}

func TestSelectNeighbors(t *testing.T) {
	order, geneCDS := fiveCDS()

	tests := []struct {
		name    string
		genes   []string
		nBefore int
		nAfter  int
		want    []CDSID
	}{
		{"one each side", []string{"c"}, 1, 1, []CDSID{"CDS1", "CDS3"}},
		{"clipped at start", []string{"b"}, 5, 0, []CDSID{"CDS0"}},
		{"clipped at end", []string{"d"}, 0, 10, []CDSID{"CDS4"}},
		{"whole sequence", []string{"c"}, 10, 10, []CDSID{"CDS0", "CDS1", "CDS3", "CDS4"}},
		{"zero window", []string{"c"}, 0, 0, []CDSID{}},
		{"first gene only after", []string{"a"}, 2, 2, []CDSID{"CDS1", "CDS2"}},
		{"request order kept", []string{"e", "a"}, 1, 1, []CDSID{"CDS3", "CDS1"}},
		{"overlaps not deduplicated", []string{"b", "c"}, 1, 1, []CDSID{"CDS0", "CDS2", "CDS1", "CDS3"}},
		{"same gene twice", []string{"c", "c"}, 1, 0, []CDSID{"CDS1", "CDS1"}},
		{"no genes", nil, 1, 1, []CDSID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectNeighbors(tt.genes, geneCDS, order, tt.nBefore, tt.nAfter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectNeighborsUnknownGene(t *testing.T) {
	order, geneCDS := fiveCDS()

	_, err := SelectNeighbors([]string{"c", "zzz"}, geneCDS, order, 1, 1)
	require.Error(t, err)

	var notFound *GeneNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "zzz", notFound.Gene)
	assert.True(t, errors.Is(err, ErrGeneNotFound))
	assert.Contains(t, err.Error(), `"zzz"`)
}

func TestSelectNeighborsNegativeWindow(t *testing.T) {
	order, geneCDS := fiveCDS()

	_, err := SelectNeighbors([]string{"c"}, geneCDS, order, -1, 1)
	require.Error(t, err)
	assert.IsType(t, &InvalidWindowError{}, err)
}

func TestTableSelectNeighbors(t *testing.T) {
	input := "     CDS             1..10\n" +
		"                     /gene=\"alpha\"\n" +
		"     CDS             20..30\n" +
		"                     /gene=\"beta\"\n" +
		"     CDS             40..50\n" +
		"                     /gene=\"gamma\"\n"

	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	got, err := table.SelectNeighbors([]string{"beta"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []CDSID{"CDS1..10", "CDS40..50"}, got)
}
