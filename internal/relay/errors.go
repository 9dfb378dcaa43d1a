package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"spdhec/internal/log"
)

// Error is returned by the handlers: a code for clients and the HTTP status
// to answer with.
type Error struct {
	Err        error
	Code       int
	HTTPstatus int
}

// MarshalJSON returns {"error": Err.Error(), "code": Code}.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorBody{Err: e.Err.Error(), Code: e.Code})
}

type errorBody struct {
	Err  string `json:"error"`
	Code int    `json:"code"`
}

func (e Error) Error() string { return e.Err.Error() }

func (e Error) Unwrap() error { return e.Err }

// Write sends e as the JSON response body.
func (e Error) Write(w http.ResponseWriter) {
	msg, err := json.Marshal(e)
	if err != nil {
		log.Warn(err)
		http.Error(w, "marshal failed", http.StatusInternalServerError)
		return
	}
	if log.Level() == log.LogLevelDebug {
		log.Debugw("relay error response", "error", e.Error(), "code", e.Code, "httpStatus", e.HTTPstatus)
	}
	w.Header().Set("Content-Type", "application/json")
	http.Error(w, string(msg), e.HTTPstatus)
}

// WithErr returns a copy of e with err appended to the message.
func (e Error) WithErr(err error) Error {
	return Error{
		Err:        fmt.Errorf("%w: %v", e.Err, err.Error()),
		Code:       e.Code,
		HTTPstatus: e.HTTPstatus,
	}
}

// Error codes in 40001-49999 are the client's fault, 50001-59999 the relay's.
// Codes are never reused.
var (
	ErrResourceNotFound   = Error{Code: 40001, HTTPstatus: http.StatusNotFound, Err: errors.New("resource not found")}
	ErrMalformedBody      = Error{Code: 40002, HTTPstatus: http.StatusBadRequest, Err: errors.New("malformed JSON body")}
	ErrInvalidCurve       = Error{Code: 40003, HTTPstatus: http.StatusBadRequest, Err: errors.New("invalid curve parameters")}
	ErrInvalidGenerator   = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: errors.New("invalid generator")}
	ErrInvalidParty       = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: errors.New("invalid party")}
	ErrInvalidPoint       = Error{Code: 40006, HTTPstatus: http.StatusBadRequest, Err: errors.New("invalid public point")}
	ErrAlreadyPublished   = Error{Code: 40901, HTTPstatus: http.StatusConflict, Err: errors.New("already published")}
	ErrGenericServerError = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: errors.New("internal server error")}
)
