package message

import (
	"encoding/json"
	"fmt"
)

// Response carries the fields of one outbound ADTP response. Field order
// matches the wire form emitted by ResponseBuilder.Build.
type Response struct {
	Version ProtocolVersion `json:"version"`
	Status  ResultStatus    `json:"status"`
	Headers HeaderMap       `json:"headers"`
	Content string          `json:"content"`
}

// ResponseBuilder accumulates the fields of one outbound response and
// serializes them on demand. Use NewResponse; the zero value has no header
// map allocated.
type ResponseBuilder struct {
	msg Response
}

// NewResponse returns a builder holding a response in its default state:
// version ADTP/2.0, status ok, no headers and empty content.
func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{
		msg: Response{
			Version: VersionADTP20,
			Status:  StatusOK,
			Headers: HeaderMap{},
		},
	}
}

// SetVersion replaces the protocol version tag.
func (b *ResponseBuilder) SetVersion(v ProtocolVersion) *ResponseBuilder {
	b.msg.Version = v
	return b
}

// SetStatus replaces the outcome code.
func (b *ResponseBuilder) SetStatus(s ResultStatus) *ResponseBuilder {
	b.msg.Status = s
	return b
}

// AddHeader inserts or overwrites one header entry.
func (b *ResponseBuilder) AddHeader(key, value string) *ResponseBuilder {
	b.msg.Headers.Set(key, value)
	return b
}

// SetContent replaces the payload. The payload is opaque text.
func (b *ResponseBuilder) SetContent(content string) *ResponseBuilder {
	b.msg.Content = content
	return b
}

// Message returns a snapshot of the accumulated response, detached from the
// builder's live state.
func (b *ResponseBuilder) Message() Response {
	msg := b.msg
	msg.Headers = b.msg.Headers.clone()
	return msg
}

// Build serializes the current state to the ADTP response wire form. Like
// the request variant it is a pure read and may be called repeatedly.
func (b *ResponseBuilder) Build() (string, error) {
	blob, err := json.Marshal(b.msg)
	if err != nil {
		return "", fmt.Errorf("error encoding response: %v", err)
	}
	return string(blob), nil
}
