// Package handlers provides HTTP handlers for the SeqMaster API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aria-lang/seqmaster-go/internal/fasta"
	"github.com/aria-lang/seqmaster-go/internal/genbank"
	"github.com/aria-lang/seqmaster-go/internal/protein"
	"github.com/aria-lang/seqmaster-go/internal/sequence"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusFor maps domain errors to client errors and everything else to 500.
func statusFor(err error) int {
	var (
		seqErr     sequence.SequenceError
		protErr    protein.ProteinError
		gbErr      genbank.Error
		fastaErr   fasta.Error
		tooLarge   *http.MaxBytesError
	)
	switch {
	case errors.Is(err, genbank.ErrGeneNotFound):
		return http.StatusNotFound
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &seqErr), errors.As(err, &protErr), errors.As(err, &gbErr), errors.As(err, &fastaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// ToolsResponse lists the available tool names.
type ToolsResponse struct {
	Nucleic []string `json:"nucleic"`
	Protein []string `json:"protein"`
}

// ToolsHandler lists nucleic-acid and protein tools.
func ToolsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ToolsResponse{
		Nucleic: sequence.Tools,
		Protein: protein.Tools,
	})
}
