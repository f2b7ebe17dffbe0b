// Package genbank extracts CDS features from GenBank flat files.
//
// The parser is a single linear scan over the feature table. It only looks
// at the markers it needs (CDS feature keys, /gene and /translation
// qualifiers, ORIGIN) and ignores every other line, so it accepts records
// that a strict GenBank validator would reject. That permissiveness is
// intentional: callers must not assume the input was checked for format
// conformance.
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Markers recognised by the scanner.
const (
	cdsMarker         = "     CDS"
	geneMarker        = "/gene="
	translationMarker = "/translation"
	originMarker      = "ORIGIN"
	featureIndent     = "     "
)

// CDSID identifies a CDS by its declaration line with all spaces removed,
// e.g. "CDScomplement(1200..2400)".
type CDSID string

// Record holds the qualifiers collected for one CDS.
type Record struct {
	Gene        string
	Translation string
}

// Table is the result of scanning a GenBank record.
//
// Records maps every CDS in Order to its gene and translation. GeneCDS maps
// a gene name to the CDS declared most recently before the /gene qualifier
// was seen; when a gene name recurs the last occurrence wins.
type Table struct {
	Records map[CDSID]Record
	GeneCDS map[string]CDSID
	Order   []CDSID
}

// Len returns the number of CDS declarations in the table.
func (t *Table) Len() int {
	return len(t.Order)
}

// Index returns the position of id in file order, or -1.
func (t *Table) Index(id CDSID) int {
	return indexOf(t.Order, id)
}

type scanState int

const (
	// stateSeeking: outside any CDS feature block.
	stateSeeking scanState = iota
	// stateInCDS: inside the qualifiers of the current CDS.
	stateInCDS
	// stateInTranslation: collecting a wrapped /translation value.
	stateInTranslation
)

// accumulator is the CDS currently being assembled.
type accumulator struct {
	id          CDSID
	gene        string
	translation strings.Builder
	open        bool
}

func (a *accumulator) reset(id CDSID) {
	a.id = id
	a.gene = ""
	a.translation.Reset()
	a.open = true
}

type builder struct {
	table *Table
	state scanState
	cur   accumulator
}

func newBuilder() *builder {
	return &builder{
		table: &Table{
			Records: make(map[CDSID]Record),
			GeneCDS: make(map[string]CDSID),
			Order:   make([]CDSID, 0),
		},
	}
}

// flush stores the accumulator in the table.
func (b *builder) flush() {
	if !b.cur.open {
		return
	}
	b.table.Records[b.cur.id] = Record{
		Gene:        b.cur.gene,
		Translation: stripQuotes(b.cur.translation.String()),
	}
	b.cur.open = false
}

func (b *builder) line(line string) {
	line = strings.TrimRight(line, "\r\n")

	switch {
	case strings.HasPrefix(line, cdsMarker):
		b.flush()
		id := CDSID(removeSpaces(line))
		b.cur.reset(id)
		b.table.Order = append(b.table.Order, id)
		b.state = stateInCDS

	case strings.Contains(line, geneMarker):
		gene := qualifierValue(line, geneMarker)
		if b.cur.open {
			b.table.GeneCDS[gene] = b.cur.id
		}
		if b.state != stateSeeking {
			b.cur.gene = gene
		}

	case strings.Contains(line, translationMarker):
		if b.state == stateSeeking {
			return
		}
		compact := removeSpaces(line)
		fragment := compact[strings.Index(compact, translationMarker)+len(translationMarker):]
		b.cur.translation.Reset()
		b.cur.translation.WriteString(strings.TrimPrefix(fragment, "="))
		b.state = stateInTranslation
		if closesTranslation(b.cur.translation.String()) {
			b.state = stateInCDS
		}

	case strings.Contains(line, originMarker):
		b.state = stateSeeking

	case isFeatureKey(line):
		b.state = stateSeeking

	case b.state == stateInTranslation:
		b.cur.translation.WriteString(removeSpaces(line))
		if closesTranslation(b.cur.translation.String()) {
			b.state = stateInCDS
		}
	}
}

// Parse scans a GenBank flat file and builds its CDS table. Lines that are
// not recognised are ignored. A record without CDS features yields an empty
// table.
func Parse(r io.Reader) (*Table, error) {
	b := newBuilder()

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			b.line(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading GenBank record: %w", err)
		}
	}
	b.flush()

	return b.table, nil
}

// ReadFile parses the GenBank file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening GenBank file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func removeSpaces(s string) string {
	return strings.ReplaceAll(strings.TrimRight(s, "\r\n"), " ", "")
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// qualifierValue returns the value following marker with spaces and quotes
// removed.
func qualifierValue(line, marker string) string {
	compact := removeSpaces(line)
	if i := strings.Index(compact, marker); i >= 0 {
		compact = compact[i+len(marker):]
	}
	return stripQuotes(compact)
}

// closesTranslation reports whether the collected text carries both the
// opening and the closing quote. Unquoted values run until the next CDS,
// feature key or ORIGIN line.
func closesTranslation(s string) bool {
	return strings.Count(s, `"`) >= 2
}

// isFeatureKey reports whether line opens a new feature other than CDS.
func isFeatureKey(line string) bool {
	if !strings.HasPrefix(line, featureIndent) || len(line) <= len(featureIndent) {
		return false
	}
	return line[len(featureIndent)] != ' '
}
