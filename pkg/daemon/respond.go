package daemon

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sipeed/walletd/pkg/engine"
	"github.com/sipeed/walletd/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorCF("daemon", "Failed to encode response", map[string]any{
			"error": err.Error(),
		})
	}
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeJSONError(w, http.StatusBadRequest, err)
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.ErrorCF("daemon", "Internal error", map[string]any{
		"error": err.Error(),
	})
	writeJSONError(w, http.StatusInternalServerError, err)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	message := strings.TrimSpace(err.Error())
	if message == "" {
		message = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": message})
}

// writeEngineError maps the engine taxonomy onto HTTP statuses. Unknown
// identifiers deliberately share the 400 class with validation failures;
// both are client-input problems in this design.
func writeEngineError(w http.ResponseWriter, err error) {
	var ve *engine.ValidationError
	var nfe *engine.NotFoundError
	if errors.As(err, &ve) || errors.As(err, &nfe) {
		writeBadRequest(w, err)
		return
	}
	writeInternalError(w, err)
}
