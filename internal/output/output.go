// Package output places result files next to their inputs and writes them
// atomically.
package output

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	permDir  = 0o755
	permFile = 0o644
	bufSize  = 64 * 1024
)

// ErrInvalidName is returned for output names that would escape the output
// directory.
var ErrInvalidName = errors.New("invalid output file name")

// Location returns the path of an output file for input.
//
// The file lives in <dir of input>/<dir>. When name is empty it becomes
// prefix + input base name without extension + ext, e.g.
// Location("data/x.gbk", "", "fasta_selected_from_gbk", "CDS_selected_from_", ".fasta")
// is "data/fasta_selected_from_gbk/CDS_selected_from_x.fasta".
func Location(input, name, dir, prefix, ext string) (string, error) {
	root := filepath.Join(filepath.Dir(input), dir)
	if name == "" {
		base := filepath.Base(input)
		name = prefix + strings.TrimSuffix(base, filepath.Ext(base)) + ext
	}

	name = filepath.Clean(name)
	if name == "." || name == ".." || filepath.IsAbs(name) || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(root, name), nil
}

// WriteFile creates the parent directory of dest and writes the output of
// render to it. Data goes to a temporary file in the same directory which
// replaces dest only when render and every flush succeed; on failure dest is
// left as it was.
func WriteFile(ctx context.Context, dest string, render func(io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, permDir); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, permFile)

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriterSize(tmp, bufSize)
	if err := render(bw); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(fmt.Errorf("writing %s: %w", dest, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing %s: %w", dest, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", dest, err)
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}
