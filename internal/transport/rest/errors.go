package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// handleError maps domain errors to HTTP responses.
// Not found and forbidden share a 404 so hidden accounts are
// indistinguishable from missing ones.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := validationResponse{Error: "validation failed"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		respond(w, r, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		if negotiate(r) == formatXML {
			writeEmpty(w, http.StatusNotFound)
			return
		}
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
