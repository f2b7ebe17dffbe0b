package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqmaster-go/api/handlers"
	"github.com/aria-lang/seqmaster-go/internal/config"
	"github.com/aria-lang/seqmaster-go/pkg/seqmaster"
)

const threeGeneRecord = `FEATURES             Location/Qualifiers
     CDS             1..30
                     /gene="alpha"
                     /translation="MAA"
     CDS             40..70
                     /gene="beta"
                     /translation="MBB"
     CDS             80..110
                     /gene="gamma"
                     /translation="MCC"
ORIGIN
//
`

func newTestServer(t *testing.T, maxBody int64) *httptest.Server {
	t.Helper()
	cfg := config.ServerConfig{RequestTimeout: 5 * time.Second, MaxBodyBytes: maxBody}
	srv := httptest.NewServer(NewRouter(log.New(io.Discard), cfg))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestTools(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Get(srv.URL + "/api/tools")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got handlers.ToolsResponse
	decodeBody(t, resp, &got)
	assert.Contains(t, got.Nucleic, "reverse_complement")
	assert.Contains(t, got.Protein, "find_site")
}

func TestNucleicTools(t *testing.T) {
	srv := newTestServer(t, 0)

	t.Run("complement", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/nucleic/complement", handlers.NucleicRequest{
			Sequences: []string{"ATGC", "aacg"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Tool    string   `json:"tool"`
			Results []string `json:"results"`
		}
		decodeBody(t, resp, &got)
		assert.Equal(t, "complement", got.Tool)
		assert.Equal(t, []string{"TACG", "ttgc"}, got.Results)
	})

	t.Run("gc content", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/nucleic/gc_content", handlers.NucleicRequest{
			Sequences: []string{"GGCC", "ATAT"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Results []float64 `json:"results"`
		}
		decodeBody(t, resp, &got)
		assert.Equal(t, []float64{100, 0}, got.Results)
	})

	t.Run("invalid base", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/nucleic/reverse", handlers.NucleicRequest{
			Sequences: []string{"ATGX"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var got handlers.ErrorResponse
		decodeBody(t, resp, &got)
		assert.NotEmpty(t, got.Error)
	})

	t.Run("unknown tool", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/nucleic/splice", handlers.NucleicRequest{
			Sequences: []string{"ATGC"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown kind", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/nucleic/complement", handlers.NucleicRequest{
			Sequences: []string{"ATGC"},
			Kind:      "XNA",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("no sequences", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/nucleic/complement", handlers.NucleicRequest{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProteinTools(t *testing.T) {
	srv := newTestServer(t, 0)

	t.Run("find site", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/protein/find_site", handlers.ProteinRequest{
			Sequences: []string{"MKTAYIAKAY"},
			Site:      "AY",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got handlers.ProteinResponse
		decodeBody(t, resp, &got)
		assert.Equal(t, "find_site", got.Tool)
		assert.Equal(t, [][]int{{4, 9}}, got.Sites)
	})

	t.Run("three letter mrna", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/protein/get_mrna", handlers.ProteinRequest{
			Sequences: []string{"MetLysTrp"},
			Encoding:  3,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got handlers.ProteinResponse
		decodeBody(t, resp, &got)
		assert.Equal(t, []string{"AUGAAAUGG"}, got.Strings)
	})

	t.Run("not a protein", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/protein/calculate_protein_mass", handlers.ProteinRequest{
			Sequences: []string{"MK1"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGenBankSelect(t *testing.T) {
	srv := newTestServer(t, 0)

	t.Run("neighbours", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/genbank/select", handlers.GenBankSelectRequest{
			GenBank: threeGeneRecord,
			Genes:   []string{"beta"},
			NBefore: 1,
			NAfter:  1,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/x-fasta", resp.Header.Get("Content-Type"))
		assert.Equal(t, "2", resp.Header.Get("X-Record-Count"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, ">CDS1..30 gene: alpha\nMAA\n>CDS80..110 gene: gamma\nMCC\n", string(body))
	})

	t.Run("matches library output", func(t *testing.T) {
		want, n, err := seqmaster.SelectGenesFASTA(strings.NewReader(threeGeneRecord), []string{"alpha", "gamma"}, 2, 2)
		require.NoError(t, err)

		resp := postJSON(t, srv.URL+"/api/genbank/select", handlers.GenBankSelectRequest{
			GenBank: threeGeneRecord,
			Genes:   []string{"alpha", "gamma"},
			NBefore: 2,
			NAfter:  2,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, strconv.Itoa(n), resp.Header.Get("X-Record-Count"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(body))
	})

	t.Run("unknown gene", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/genbank/select", handlers.GenBankSelectRequest{
			GenBank: threeGeneRecord,
			Genes:   []string{"delta"},
			NBefore: 1,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var got handlers.ErrorResponse
		decodeBody(t, resp, &got)
		assert.Contains(t, got.Error, `"delta"`)
	})

	t.Run("negative window", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/genbank/select", handlers.GenBankSelectRequest{
			GenBank: threeGeneRecord,
			Genes:   []string{"beta"},
			NBefore: -1,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/genbank/select", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFASTAOneLine(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Post(srv.URL+"/api/fasta/oneline", "text/x-fasta",
		strings.NewReader(">r1 first\nACGT\nACGT\n>r2\nGG\n"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-Record-Count"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, ">r1 first\nACGTACGT\n>r2\nGG\n", string(body))
}

func TestFASTAOneLineMalformed(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Post(srv.URL+"/api/fasta/oneline", "text/x-fasta", strings.NewReader("ACGT\nACGT\n"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got handlers.ErrorResponse
	decodeBody(t, resp, &got)
	assert.Contains(t, got.Error, "reading FASTA")
}

func TestBodyLimit(t *testing.T) {
	srv := newTestServer(t, 64)

	resp := postJSON(t, srv.URL+"/api/genbank/select", handlers.GenBankSelectRequest{
		GenBank: threeGeneRecord,
		Genes:   []string{"beta"},
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}
