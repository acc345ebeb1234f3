// Package fopbridge provides the response and paging helpers shared by bridges.
package fopbridge

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrazmi/crudkit/infrastructure/web"
)

// MessageResponse is a body carrying only a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(format string, args ...any) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf(format, args...)}
}

func (m MessageResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

// Delete response modes.
const (
	DeleteEmpty   = "empty"
	DeleteMessage = "message"
)

// DeleteResponse answers a successful delete: 204 with no body by default,
// or 200 with a confirmation message in DeleteMessage mode.
func DeleteResponse(mode string, resource string, id int) web.Encoder {
	if mode == DeleteMessage {
		return web.NewJSONResponseWithStatus(
			NewMessageResponse("%s item with ID %d deleted", resource, id),
			http.StatusOK,
		)
	}
	return web.NewNoContent()
}
