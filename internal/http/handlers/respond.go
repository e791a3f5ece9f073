package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	questionsvc "codearea/internal/services/question"

	"github.com/rs/zerolog/log"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeServiceError maps question service errors to HTTP statuses. Store
// failures are logged but not echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		filterErr     *questionsvc.InvalidFilterError
		paginationErr *questionsvc.InvalidPaginationError
		validationErr *questionsvc.ValidationError
		repoErr       *questionsvc.RepositoryError
	)
	switch {
	case errors.As(err, &filterErr):
		writeError(w, http.StatusBadRequest, filterErr.Error())
	case errors.As(err, &paginationErr):
		writeError(w, http.StatusBadRequest, paginationErr.Error())
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, questionsvc.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, questionsvc.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, questionsvc.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &repoErr):
		log.Error().Err(err).Str("op", repoErr.Op).Str("path", r.URL.Path).Msg("question repository failure")
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
