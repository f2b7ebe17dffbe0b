package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/aria-lang/seqmaster-go/internal/fasta"
	"github.com/aria-lang/seqmaster-go/pkg/seqmaster"
)

const fastaContentType = "text/x-fasta"

// GenBankSelectRequest asks for the CDS neighbours of genes in a GenBank
// record sent inline.
type GenBankSelectRequest struct {
	GenBank string   `json:"genbank"`
	Genes   []string `json:"genes"`
	NBefore int      `json:"n_before"`
	NAfter  int      `json:"n_after"`
}

// GenBankSelectHandler responds with the selected CDS translations as FASTA.
// The X-Record-Count header carries the number of records.
func GenBankSelectHandler(w http.ResponseWriter, r *http.Request) {
	var req GenBankSelectRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Genes) == 0 {
		writeError(w, http.StatusBadRequest, "at least one gene is required")
		return
	}

	data, n, err := seqmaster.SelectGenesFASTA(strings.NewReader(req.GenBank), req.Genes, req.NBefore, req.NAfter)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", fastaContentType)
	w.Header().Set("X-Record-Count", strconv.Itoa(n))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// OneLineHandler converts a multi-line FASTA request body to one-line FASTA.
func OneLineHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	n, err := fasta.ToOneLine(r.Body, &buf)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", fastaContentType)
	w.Header().Set("X-Record-Count", strconv.Itoa(n))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
