package web

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body used by the web layer itself.
type ErrorResponse struct {
	Detail string `json:"detail"`
	status int
}

func NewError(status int, msg string) ErrorResponse {
	return ErrorResponse{Detail: msg, status: status}
}

func (e ErrorResponse) Error() string {
	return e.Detail
}

func (e ErrorResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

func (e ErrorResponse) HTTPStatus() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}
