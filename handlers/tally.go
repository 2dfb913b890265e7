// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/danielhkuo/quickly-tally/ballots"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

type TallyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

// NewTallyHandler creates a handler; db may be nil when no ballot source is configured.
// cfg.Method is the method used by routes that do not name one.
func NewTallyHandler(db *sql.DB, cfg cliparse.Config) *TallyHandler {
	return &TallyHandler{db: db, cfg: cfg}
}

// Methods handles GET /methods
func (h *TallyHandler) Methods(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, m := range tally.Methods() {
		names = append(names, string(m))
	}
	middleware.JSONResponse(w, http.StatusOK, models.MethodsResponse{Methods: names})
}

// Tally handles POST /tally and POST /tally/{method}
// Accepts a JSON TallyRequest or a text/csv ballot table
func (h *TallyHandler) Tally(w http.ResponseWriter, r *http.Request) {
	method, ok := h.parseMethod(w, r)
	if !ok {
		return
	}

	middleware.LimitBody(w, r)
	table, err := readTable(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.CodedErrorResponse(w, http.StatusRequestEntityTooLarge, models.CodeBodyTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeInvalidBallots, err.Error())
		return
	}

	h.respond(w, r, method, table)
}

// ElectionTally handles GET /elections/{id}/tally/{method}
// Loads the election's ballot rows from the database
func (h *TallyHandler) ElectionTally(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	method, ok := h.parseMethod(w, r)
	if !ok {
		return
	}

	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No ballot database configured")
		return
	}

	table, err := ballots.LoadSQL(r.Context(), h.db, electionID)
	if err != nil {
		middleware.Logger(r).Error("failed to load ballots", "election_id", electionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if len(table.Rows) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	h.respond(w, r, method, table)
}

func (h *TallyHandler) respond(w http.ResponseWriter, r *http.Request, method tally.Method, table tally.Table) {
	res, err := tally.Tabulate(method, table)
	if err != nil {
		middleware.Logger(r).Info("tally rejected", "method", method, "error", err)
		writeTallyError(w, err)
		return
	}

	middleware.Logger(r).Info("tally computed",
		"method", method,
		"rows", len(table.Rows),
		"total_weight", res.TotalWeight,
		"winners", res.Winners,
		"tie", res.Tie,
	)

	middleware.JSONResponse(w, http.StatusOK, models.NewTallyResponse(res))
}

// parseMethod reads the {method} path value, falling back to the configured method
func (h *TallyHandler) parseMethod(w http.ResponseWriter, r *http.Request) (tally.Method, bool) {
	name := r.PathValue("method")
	if name == "" {
		name = h.cfg.Method
	}
	if name == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeUnknownMethod,
			"no tally method in path and no default method configured")
		return "", false
	}

	method, err := tally.ParseMethod(name)
	if err != nil {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeUnknownMethod, err.Error())
		return "", false
	}
	return method, true
}

// readTable decodes the body according to its content type, JSON by default
func readTable(r *http.Request) (tally.Table, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "text/csv", "text/plain":
		defer r.Body.Close()
		return ballots.ParseCSV(r.Body)
	}

	var req models.TallyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return tally.Table{}, fmt.Errorf("invalid JSON: %w", err)
	}
	for _, row := range req.Rows {
		if row.Weight < 0 {
			return tally.Table{}, ballots.ErrInvalidWeight
		}
	}
	return req.Table(), nil
}

// writeTallyError maps engine error kinds to 422 responses with a code
func writeTallyError(w http.ResponseWriter, err error) {
	var code string
	switch {
	case errors.Is(err, tally.ErrEmptyBallotTable):
		code = models.CodeEmptyBallotTable
	case errors.Is(err, tally.ErrNoCandidatesFound):
		code = models.CodeNoCandidatesFound
	case errors.Is(err, tally.ErrIncompleteRanking):
		code = models.CodeIncompleteRanking
	case errors.Is(err, tally.ErrRowIndexOutOfRange):
		code = models.CodeRowIndexOutOfRange
	case errors.Is(err, tally.ErrWeightOverflow):
		code = models.CodeWeightOverflow
	case errors.Is(err, tally.ErrUnknownMethod):
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeUnknownMethod, err.Error())
		return
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Tally failed")
		return
	}
	middleware.CodedErrorResponse(w, http.StatusUnprocessableEntity, code, err.Error())
}
