package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/topicpolicy-backend/internal/domain"
)

// Error codes of the error envelope.
const (
	codeBadRequest   = "BAD_REQUEST"
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
	codeNotFound     = "NOT_FOUND"
	codeInternal     = "INTERNAL"
)

type errorResponse struct {
	Result string `json:"result"`
	Msg    string `json:"msg"`
	Code   string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeSuccess writes {"result":"success","msg":""} merged with payload.
func writeSuccess(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"result": "success", "msg": ""}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Result: "error", Msg: msg, Code: code})
}

// handleError maps a service error to the error envelope. Unknown errors are
// logged and reported as INTERNAL without leaking their text.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, code, msg := classifyError(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeError(w, status, code, msg)
}

func classifyError(err error) (status int, code, msg string) {
	var (
		accessErr  *domain.AccessError
		removalErr *domain.RemovalError
		refErr     *domain.StreamReferenceError
		validErr   *domain.ValidationError
	)

	switch {
	case errors.As(err, &refErr):
		return http.StatusBadRequest, codeBadRequest, refErr.Message
	case errors.As(err, &accessErr):
		// A stream the user cannot see answers exactly like a missing one.
		return http.StatusNotFound, codeNotFound, accessErr.Message
	case errors.As(err, &removalErr):
		if errors.Is(removalErr, domain.ErrNoOverride) {
			return http.StatusBadRequest, codeBadRequest, removalErr.Message
		}
		return http.StatusNotFound, codeNotFound, removalErr.Message
	case errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusBadRequest, codeBadRequest, "Invalid visibility_policy"
	case errors.As(err, &validErr):
		return http.StatusBadRequest, codeBadRequest, validationMessage(validErr)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, codeBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, codeUnauthorized, "Not logged in: API authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, codeForbidden, "Forbidden"
	case errors.Is(err, domain.ErrStreamNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, codeNotFound, "Not found"
	}
	return http.StatusInternalServerError, codeInternal, "Internal server error"
}

func validationMessage(e *domain.ValidationError) string {
	if len(e.Errors) == 0 {
		return "Invalid request"
	}
	fe := e.Errors[0]
	// Translated binder messages already name the field.
	if strings.HasPrefix(fe.Message, fe.Field+" ") {
		return fe.Message
	}
	return fe.Field + ": " + fe.Message
}
