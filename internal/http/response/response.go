package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobzee/internal/common"
)

// Envelope is the wire shape for every API response.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// exposeDetail controls whether wrapped causes leak into error bodies.
// Enabled outside production to ease debugging.
var exposeDetail = false

func ExposeErrorDetail(enabled bool) {
	exposeDetail = enabled
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}

func Message(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Message: message})
}

func Error(w http.ResponseWriter, err error) {
	env := Envelope{Success: false, Error: "internal server error"}
	status := http.StatusInternalServerError

	var appErr *common.Error
	if errors.As(err, &appErr) {
		status = statusFor(appErr.Code)
		env.Error = appErr.Message
		env.Fields = appErr.Fields
		if appErr.Code == common.CodeInternal && !exposeDetail {
			env.Error = "internal server error"
		} else if exposeDetail && appErr.Err != nil {
			env.Error = appErr.Error()
		}
	} else if exposeDetail && err != nil {
		env.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeInvalidCredentials, common.CodeDuplicate:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
