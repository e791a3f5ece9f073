package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	middlewarex "codearea/internal/http/middleware"
	questionsvc "codearea/internal/services/question"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// ListQuestions handles POST /questions. The optional category and search
// query parameters must be given together.
func ListQuestions(listing *questionsvc.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req questionsvc.ListingRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := listing.List(r.Context(), req, parseListingFilter(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// CreateQuestion handles POST /questions/add
func CreateQuestion(svc *questionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req questionsvc.QuestionPayload
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := svc.Create(r.Context(), middlewarex.User(r.Context()), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ViewQuestion handles GET /questions/{questionID}
func ViewQuestion(svc *questionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := questionID(w, r)
		if !ok {
			return
		}

		resp, err := svc.View(r.Context(), middlewarex.User(r.Context()), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// UpdateQuestion handles PUT /questions/{questionID}
func UpdateQuestion(svc *questionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := questionID(w, r)
		if !ok {
			return
		}
		var req questionsvc.QuestionPayload
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.Update(r.Context(), middlewarex.User(r.Context()), id, req); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteQuestion handles DELETE /questions/{questionID}
func DeleteQuestion(svc *questionsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := questionID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), middlewarex.User(r.Context()), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// parseListingFilter keeps the difference between an absent parameter and
// an empty one.
func parseListingFilter(r *http.Request) questionsvc.ListingFilter {
	q := r.URL.Query()
	var f questionsvc.ListingFilter
	if _, ok := q["category"]; ok {
		v := q.Get("category")
		f.Category = &v
	}
	if _, ok := q["search"]; ok {
		v := q.Get("search")
		f.Search = &v
	}
	return f
}

func questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "questionID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
