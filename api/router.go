// Package api assembles the SeqMaster REST router.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/seqmaster-go/api/handlers"
	"github.com/aria-lang/seqmaster-go/api/middleware"
	"github.com/aria-lang/seqmaster-go/internal/config"
)

// NewRouter returns the HTTP handler serving every API route.
func NewRouter(logger *log.Logger, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}

	r.Get("/health", handlers.Health)
	r.Get("/", homeHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tools", handlers.ToolsHandler)
		r.Post("/nucleic/{tool}", handlers.NucleicHandler)
		r.Post("/protein/{tool}", handlers.ProteinHandler)

		r.Route("/genbank", func(r chi.Router) {
			r.Post("/select", handlers.GenBankSelectHandler)
		})

		r.Route("/fasta", func(r chi.Router) {
			r.Post("/oneline", handlers.OneLineHandler)
		})
	})

	return r
}

func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>SeqMaster API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>SeqMaster API</h1>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/nucleic/{tool}</code>
        <pre>{"sequences": ["ATGC", "ggcc"], "kind": "DNA"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/protein/{tool}</code>
        <pre>{"sequences": ["MKTAYIAK"], "encoding": 1, "site": "AY"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/genbank/select</code>
        <pre>{"genbank": "...", "genes": ["thrA"], "n_before": 1, "n_after": 1}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/fasta/oneline</code>
        <p>Request body is FASTA text; the response is one-line FASTA.</p>
    </div>

    <p>GET <code>/api/tools</code> lists the tool names.</p>
</body>
</html>`))
}
