package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the error envelope of every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Error: message})
}
