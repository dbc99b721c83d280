package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/akun-go/apperror"
)

// WriteJSON serializes data to the response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"status":false,"message":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// WriteError renders err as the standard {status:false,message} envelope.
// Errors that are not *apperror.AppError are wrapped as internal errors so
// every failure leaves the service in the same JSON shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("internal server error", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToEnvelope())
}
