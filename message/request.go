package message

import (
	"encoding/json"
	"fmt"
)

// Request carries the fields of one outbound ADTP request. Field order
// matches the wire form emitted by RequestBuilder.Build.
type Request struct {
	Version ProtocolVersion `json:"version"`
	Method  OperationKind   `json:"method"`
	Headers HeaderMap       `json:"headers"`
	URI     string          `json:"uri"`
	Content string          `json:"content"`
}

// RequestBuilder accumulates the fields of one outbound request and
// serializes them on demand. Use NewRequest; the zero value has no header
// map allocated.
type RequestBuilder struct {
	msg Request
}

// NewRequest returns a builder holding a request in its default state:
// version ADTP/2.0, the check operation, no headers, empty URI and empty
// content. The default state is valid and serializable as is.
func NewRequest() *RequestBuilder {
	return &RequestBuilder{
		msg: Request{
			Version: VersionADTP20,
			Method:  OperationCheck,
			Headers: HeaderMap{},
		},
	}
}

// SetVersion replaces the protocol version tag.
func (b *RequestBuilder) SetVersion(v ProtocolVersion) *RequestBuilder {
	b.msg.Version = v
	return b
}

// SetMethod replaces the operation verb.
func (b *RequestBuilder) SetMethod(m OperationKind) *RequestBuilder {
	b.msg.Method = m
	return b
}

// AddHeader inserts or overwrites one header entry. Keys and values pass
// through verbatim; there is no limit on count or length.
func (b *RequestBuilder) AddHeader(key, value string) *RequestBuilder {
	b.msg.Headers.Set(key, value)
	return b
}

// SetURI replaces the target resource identifier. Any text is accepted,
// well-formed or not.
func (b *RequestBuilder) SetURI(uri string) *RequestBuilder {
	b.msg.URI = uri
	return b
}

// SetContent replaces the payload. The payload is opaque text; it is never
// parsed or re-encoded, even when it happens to be JSON.
func (b *RequestBuilder) SetContent(content string) *RequestBuilder {
	b.msg.Content = content
	return b
}

// Message returns a snapshot of the accumulated request. The snapshot does
// not alias the builder: later builder mutations leave it untouched.
func (b *RequestBuilder) Message() Request {
	msg := b.msg
	msg.Headers = b.msg.Headers.clone()
	return msg
}

// Build serializes the current state to the ADTP request wire form. Build
// is a pure read: the builder stays mutable and reusable, and building
// twice without an intervening setter call yields byte-identical output.
func (b *RequestBuilder) Build() (string, error) {
	blob, err := json.Marshal(b.msg)
	if err != nil {
		return "", fmt.Errorf("error encoding request: %v", err)
	}
	return string(blob), nil
}
