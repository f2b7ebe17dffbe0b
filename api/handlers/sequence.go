package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/seqmaster-go/internal/protein"
	"github.com/aria-lang/seqmaster-go/internal/sequence"
)

// NucleicRequest represents a nucleic-acid tool request.
type NucleicRequest struct {
	Sequences []string `json:"sequences"`
	Kind      string   `json:"kind,omitempty"` // "DNA" (default) or "RNA"
}

// NucleicResponse carries per-sequence results. Values are strings for
// sequence-valued tools and numbers for gc_content.
type NucleicResponse struct {
	Tool    string      `json:"tool"`
	Results interface{} `json:"results"`
}

// NucleicHandler runs the nucleic-acid tool named in the URL.
func NucleicHandler(w http.ResponseWriter, r *http.Request) {
	var req NucleicRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) == 0 {
		writeError(w, http.StatusBadRequest, "at least one sequence is required")
		return
	}

	kind, err := sequence.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tool := chi.URLParam(r, "tool")
	res, err := sequence.RunTool(tool, kind, req.Sequences...)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	var results interface{} = res.Strings
	if res.Floats != nil {
		results = res.Floats
	}
	writeJSON(w, http.StatusOK, NucleicResponse{Tool: tool, Results: results})
}

// ProteinRequest represents a protein tool request.
type ProteinRequest struct {
	Sequences []string `json:"sequences"`
	Encoding  int      `json:"encoding,omitempty"` // 1 (default) or 3
	Site      string   `json:"site,omitempty"`
}

// ProteinResponse carries the tool name and its result.
type ProteinResponse struct {
	Tool string `json:"tool"`
	protein.Result
}

// ProteinHandler runs the protein tool named in the URL.
func ProteinHandler(w http.ResponseWriter, r *http.Request) {
	var req ProteinRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) == 0 {
		writeError(w, http.StatusBadRequest, "at least one sequence is required")
		return
	}
	if req.Encoding == 0 {
		req.Encoding = protein.OneLetter
	}

	tool := chi.URLParam(r, "tool")
	res, err := protein.RunTool(tool, req.Encoding, req.Site, req.Sequences...)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ProteinResponse{Tool: tool, Result: res})
}
