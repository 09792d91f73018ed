// Package respond writes the JSON response envelope used by every API
// endpoint. It includes error sanitization to prevent leaking sensitive
// information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// Envelope codes. Business failures travel in the envelope, not in the
// HTTP status: a rejected operation is still HTTP 200 with CodeFail.
// Missing resources are the exception and use HTTP 404 with CodeNotFound.
const (
	CodeOK       = 0
	CodeFail     = -1
	CodeNotFound = 404
)

const defaultOKMessage = "success"

// Envelope is the uniform response body: {code, message, data}.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes an envelope with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		// Headers already sent, can only log.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", status),
			slog.Any("error", err))
	}
}

// OK writes a success envelope with HTTP 200.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Code: CodeOK, Message: defaultOKMessage, Data: data})
}

// OKMessage writes a success envelope carrying only a message.
func OKMessage(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Envelope{Code: CodeOK, Message: message})
}

// Fail writes a business-failure envelope. The HTTP status stays 200;
// clients branch on the envelope code.
func Fail(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Envelope{Code: CodeFail, Message: message})
}

// NotFound writes a not-found envelope with HTTP 404.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "not found"
	}
	JSON(w, http.StatusNotFound, Envelope{Code: CodeNotFound, Message: message})
}

// FailSafe writes a failure envelope for an arbitrary error, sanitizing
// messages that are not safe to show. Validation-style messages pass
// through; anything else is logged and replaced by a generic message.
func FailSafe(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if isSafeMessage(msg) {
		Fail(w, msg)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	JSON(w, http.StatusInternalServerError,
		Envelope{Code: CodeFail, Message: "internal server error"})
}

// ユーザーに返してOKなエラーメッセージかどうかを判定
func isSafeMessage(msg string) bool {
	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"already exists",
		"must be",
		"cannot be",
		"disabled",
		"too long",
		"too short",
	}
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			return true
		}
	}
	return false
}
