package genbank

// SelectNeighbors returns the CDS identifiers surrounding each gene's CDS.
//
// For every gene, in request order, the window
// [index-nBefore, index+nAfter] around the gene's CDS is clipped to the
// bounds of order and appended to the result without the gene's own CDS.
// Overlapping windows are not deduplicated. A gene missing from geneCDS
// fails the whole selection with a *GeneNotFoundError.
func SelectNeighbors(genes []string, geneCDS map[string]CDSID, order []CDSID, nBefore, nAfter int) ([]CDSID, error) {
	if nBefore < 0 || nAfter < 0 {
		return nil, &InvalidWindowError{Before: nBefore, After: nAfter}
	}

	selected := make([]CDSID, 0)
	for _, gene := range genes {
		id, ok := geneCDS[gene]
		if !ok {
			return nil, &GeneNotFoundError{Gene: gene}
		}

		center := indexOf(order, id)
		if center < 0 {
			return nil, &GeneNotFoundError{Gene: gene}
		}

		start := max(center-nBefore, 0)
		end := min(center+nAfter, len(order)-1)
		for i := start; i <= end; i++ {
			if i == center {
				continue
			}
			selected = append(selected, order[i])
		}
	}

	return selected, nil
}

// SelectNeighbors selects neighbour CDS identifiers from the table.
func (t *Table) SelectNeighbors(genes []string, nBefore, nAfter int) ([]CDSID, error) {
	return SelectNeighbors(genes, t.GeneCDS, t.Order, nBefore, nAfter)
}

func indexOf(order []CDSID, id CDSID) int {
	for i, o := range order {
		if o == id {
			return i
		}
	}
	return -1
}
