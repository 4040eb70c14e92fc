package models

import "errors"

// ErrUpstreamUnavailable marks a failed fetch from the rate provider.
// Callers match it with errors.Is; the HTTP layer maps it to 502.
var ErrUpstreamUnavailable = errors.New("upstream rate provider unavailable")

type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *BusinessError) Error() string { return e.Message }

func BizError(code, msg string) *BusinessError { return &BusinessError{Code: code, Message: msg} }
