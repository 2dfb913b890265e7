// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	tallyHandler := handlers.NewTallyHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /methods", middleware.WithLogging(tallyHandler.Methods))

	// Inline ballot tables; the bare route uses cfg.Method
	mux.HandleFunc("POST /tally", middleware.WithLogging(tallyHandler.Tally))
	mux.HandleFunc("POST /tally/{method}", middleware.WithLogging(tallyHandler.Tally))

	// Stored ballot tables
	mux.HandleFunc("GET /elections/{id}/tally/{method}", middleware.WithLogging(tallyHandler.ElectionTally))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return mux
}
