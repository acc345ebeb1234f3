// Package errs provides the error type returned across the HTTP boundary.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/jrazmi/crudkit/core/repositories"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

var (
	OK                 = ErrCode{value: 0}
	InvalidArgument    = ErrCode{value: 3}
	NotFound           = ErrCode{value: 5}
	AlreadyExists      = ErrCode{value: 6}
	FailedPrecondition = ErrCode{value: 9}
	Internal           = ErrCode{value: 13}

	// InternalOnlyLog is logged with its message but answered as a plain Internal.
	InternalOnlyLog = ErrCode{value: 17}
)

var codeNames = map[ErrCode]string{
	OK:                 "ok",
	InvalidArgument:    "invalid_argument",
	NotFound:           "not_found",
	AlreadyExists:      "already_exists",
	FailedPrecondition: "failed_precondition",
	Internal:           "internal",
	InternalOnlyLog:    "internal_only_log",
}

var httpStatus = map[ErrCode]int{
	OK:                 http.StatusOK,
	InvalidArgument:    http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	AlreadyExists:      http.StatusConflict,
	FailedPrecondition: http.StatusPreconditionFailed,
	Internal:           http.StatusInternalServerError,
	InternalOnlyLog:    http.StatusInternalServerError,
}

// Error represents an error in the system.
type Error struct {
	Code     ErrCode `json:"-"`
	Message  string  `json:"detail"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on a error message.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// FromRepository maps a repository error to its HTTP facing code. resource
// names the record type in not found messages.
func FromRepository(err error, resource string) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	e := Error{
		Code:     InternalOnlyLog,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		e.Code = NotFound
		e.Message = resource + " not found"
	case errors.Is(err, repositories.ErrAlreadyExists):
		e.Code = AlreadyExists
		e.Message = messageOf(err)
	case errors.Is(err, repositories.ErrInvalidID):
		e.Code = InvalidArgument
		e.Message = messageOf(err)
	}

	return &e
}

// messageOf prefers the record level message over the wrapping chain.
func messageOf(err error) string {
	var re *repositories.RecordError
	if errors.As(err, &re) {
		return re.Error()
	}
	return err.Error()
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

// HTTPStatus implements the web package httpStatus interface so the
// web framework can use the correct http status.
func (e *Error) HTTPStatus() int {
	if s, ok := httpStatus[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Equal provides support for the go-cmp package and testing.
func (e *Error) Equal(e2 *Error) bool {
	return e.Code == e2.Code && e.Message == e2.Message
}

// IsError tests the concrete error is of the Error type.
func IsError(err error) bool {
	var er *Error
	return errors.As(err, &er)
}

// GetError returns a copy of the Error pointer.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return nil
	}
	return er
}
