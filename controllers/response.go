package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"huile-de-sfax/utils"
)

// storeTimeout bounds every store call made while serving a request.
const storeTimeout = 5 * time.Second

const detailInternal = "Internal server error"

type detailResponse struct {
	Detail string             `json:"detail"`
	Errors []utils.FieldError `json:"errors,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func storeContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), storeTimeout)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// decodeAndValidate reads the JSON body into dst and checks its constraints.
// An empty body decodes as an empty object. It writes the 422 response itself and
// reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validator *utils.Validator, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid JSON body")
		return false
	}

	err := validator.Struct(dst)
	if err == nil {
		return true
	}
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, detailResponse{
			Detail: "Validation failed",
			Errors: validationErr.Fields,
		})
		return false
	}
	writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	return false
}

func internalError(w http.ResponseWriter, logger *zap.Logger, message string, err error) {
	logger.Error(message, zap.Error(err))
	writeDetail(w, http.StatusInternalServerError, detailInternal)
}
