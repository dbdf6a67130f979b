package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/sanchara/sanchara/internal/logging"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := logging.FromContext(r.Context())
	if status == 0 {
		status = http.StatusInternalServerError
	}
	logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	JSON(w, status, HTTPError{
		Code:    status,
		Message: err.Error(),
	})
}

func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
