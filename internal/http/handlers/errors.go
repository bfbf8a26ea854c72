package handlers

import (
	"errors"
	"net/http"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/service/negotiation"
	"agrimarket-delivery/internal/truckban"
)

type violationResponse struct {
	Error       string   `json:"error"`
	Violations  []string `json:"violations"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func newViolationResponse(msg string, res truckban.Result) violationResponse {
	return violationResponse{
		Error:       msg,
		Violations:  nonNil(res.Violations),
		Warnings:    nonNil(res.Warnings),
		Suggestions: nonNil(res.Suggestions),
	}
}

// writeServiceError maps service errors onto status codes.
// Negotiation conflicts are reported as 400, not 409.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *negotiation.ViolationError
	switch {
	case errors.As(err, &verr):
		writeJSON(logger, w, r, http.StatusBadRequest, newViolationResponse(verr.Error(), verr.Result))
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(logger, w, r, http.StatusUnauthorized, apperr.Message(err, "authentication required"))
	case errors.Is(err, apperr.ErrForbidden):
		writeError(logger, w, r, http.StatusForbidden, apperr.Message(err, "forbidden"))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, apperr.Message(err, "not found"))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, apperr.Message(err, "invalid input"))
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusBadRequest, apperr.Message(err, "conflict"))
	default:
		logger.Error("request failed",
			logx.String("event", "http_internal_error"),
			logx.String("request_id", reqID(r.Context())),
			logx.String("method", r.Method),
			logx.String("path", r.URL.Path),
			logx.Err(err))
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
