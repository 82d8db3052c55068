package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/quiplash-go/internal/api/response"
	"github.com/mcoot/quiplash-go/internal/model"
)

// Failure messages for domain-level errors
// These are part of the API contract: clients match on them
const (
	MsgUsernameLength   = "Username less than 5 characters or more than 12 characters"
	MsgPasswordLength   = "Password less than 8 characters or more than 12 characters"
	MsgPromptLength     = "Prompt less than 20 characters or more than 100 characters"
	MsgUsernameExists   = "Username already exists"
	MsgUsernameNotFound = "Username not found"
	MsgIncorrectPass    = "Incorrect password"
	MsgPromptNotFound   = "Prompt not found"
	MsgInternalError    = "Internal error"
)

// httpError combines an HTTP status code with an envelope
type httpError struct {
	status   int
	envelope response.Envelope
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.envelope.Msg
}

// WriteError writes an error response to the response writer.
//
// Domain-level failures (validation, unknown username, bad credentials,
// missing prompt) are reported as HTTP 200 with result=false. Malformed
// requests are 400; everything else is a 500
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(he.envelope)
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrUsernameLength):
		return &httpError{http.StatusOK, response.Fail(MsgUsernameLength)}
	case errors.Is(err, model.ErrPasswordLength):
		return &httpError{http.StatusOK, response.Fail(MsgPasswordLength)}
	case errors.Is(err, model.ErrPromptLength):
		return &httpError{http.StatusOK, response.Fail(MsgPromptLength)}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusOK, response.Fail(MsgUsernameExists)}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusOK, response.Fail(MsgUsernameNotFound)}
	case errors.Is(err, model.ErrIncorrectPassword):
		return &httpError{http.StatusOK, response.Fail(MsgIncorrectPass)}
	case errors.Is(err, model.ErrPromptNotFound):
		return &httpError{http.StatusOK, response.Fail(MsgPromptNotFound)}
	default:
		return &httpError{http.StatusInternalServerError, response.Fail(MsgInternalError)}
	}
}

// NewInvalidRequestError creates a 400 error for malformed requests
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, response.Fail(message)}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, response.Fail(MsgInternalError)}
}
