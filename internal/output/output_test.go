package output

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		out   string
		want  string
	}{
		{"default name", filepath.Join("data", "x.gbk"), "", filepath.Join("data", "results", "pre_x.fasta")},
		{"explicit name", filepath.Join("data", "x.gbk"), "mine.fa", filepath.Join("data", "results", "mine.fa")},
		{"no extension", "reads", "", filepath.Join("results", "pre_reads.fasta")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Location(tt.input, tt.out, "results", "pre_", ".fasta")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocationRejectsEscapes(t *testing.T) {
	for _, name := range []string{"../x.fa", "sub/x.fa", ".."} {
		_, err := Location("in.gbk", name, "results", "", ".fa")
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestWriteFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "out.txt")

	err := WriteFile(context.Background(), dest, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteFileRenderErrorKeepsOldContent(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := WriteFile(context.Background(), dest, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileCancelled(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sub", "out.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteFile(ctx, dest, func(w io.Writer) error { return nil })
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Dir(dest))
	assert.True(t, os.IsNotExist(statErr))
}
