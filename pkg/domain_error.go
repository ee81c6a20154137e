package pkg

import "net/http"

// AppError is the error shape surfaced by the HTTP layer.
//
// Usecases return sentinel errors or *AppError directly (when the message is
// dynamic, e.g. state-specific transition rejections); handlers translate
// sentinels into AppErrors before writing the response.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewNotFound(message string) *AppError {
	return NewDomainErrorSimple("NOT_FOUND", message, http.StatusNotFound)
}

func NewForbidden(message string) *AppError {
	return NewDomainErrorSimple("FORBIDDEN", message, http.StatusForbidden)
}

func NewConflict(message string) *AppError {
	return NewDomainErrorSimple("CONFLICT", message, http.StatusConflict)
}

func NewBadRequest(message string) *AppError {
	return NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
}

func NewDependencyFailure(message string, err error) *AppError {
	return NewDomainError("DEPENDENCY_FAILURE", message, err, http.StatusBadGateway)
}
