package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same error envelope the REST handlers use, so that
// clients see one error shape whether a request failed in middleware or in a handler.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"result": "error",
		"msg":    msg,
		"code":   code,
	})
}
