// Package emit assembles ADTP messages from declarative directives and
// writes the serialized text to a local destination. It is the local
// consumer side of the message builders: stdout or files only, never a
// network channel.
package emit

import (
	"fmt"
	"io"

	"github.com/ApplePieCodes/adtp-go/message"
	"github.com/ApplePieCodes/adtp-go/version"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Directive kinds.
const (
	KindRequest  = "request"
	KindResponse = "response"
)

// messageIDHeader is the header stamped when a directive asks for an ID.
const messageIDHeader = "X-ADTP-Message-Id"

// ErrUnknownKind is returned when a directive carries a kind that is
// neither request nor response.
var ErrUnknownKind = errors.New("unknown directive kind")

// Directive describes one message to assemble. Zero values fall back to the
// builder defaults; no field value is validated here, matching the
// permissive contract of the builders. An empty Kind means request.
type Directive struct {
	Kind    string            `json:"kind" schema:"kind"`
	Version string            `json:"version" schema:"version"`
	Method  string            `json:"method" schema:"method"`
	Status  string            `json:"status" schema:"status"`
	URI     string            `json:"uri" schema:"uri"`
	Content string            `json:"content" schema:"content"`
	Headers map[string]string `json:"headers" schema:"-"`
	StampID bool              `json:"stamp_id" schema:"stamp_id"`
}

func (d Directive) kind() string {
	if d.Kind == "" {
		return KindRequest
	}
	return d.Kind
}

// Assemble drives the message builders over the directive and returns the
// serialized wire text.
func Assemble(d Directive) (string, error) {
	switch d.kind() {
	case KindRequest:
		b := message.NewRequest()
		if d.Version != "" {
			b.SetVersion(message.ProtocolVersion(d.Version))
		}
		if d.Method != "" {
			b.SetMethod(message.OperationKind(d.Method))
		}
		b.SetURI(d.URI).SetContent(d.Content)
		for key, value := range d.Headers {
			b.AddHeader(key, value)
		}
		if d.StampID {
			b.AddHeader(messageIDHeader, uuid.New().String())
		}
		return b.Build()
	case KindResponse:
		b := message.NewResponse()
		if d.Version != "" {
			b.SetVersion(message.ProtocolVersion(d.Version))
		}
		if d.Status != "" {
			b.SetStatus(message.ResultStatus(d.Status))
		}
		b.SetContent(d.Content)
		for key, value := range d.Headers {
			b.AddHeader(key, value)
		}
		if d.StampID {
			b.AddHeader(messageIDHeader, uuid.New().String())
		}
		return b.Build()
	default:
		return "", errors.Wrap(ErrUnknownKind, d.Kind)
	}
}

// Emitter assembles directives and writes one serialized message per line
// to its destination writer.
type Emitter struct {
	logger  logrus.FieldLogger
	metrics *Collector
	out     io.Writer
}

// NewEmitter returns an emitter writing to out.
func NewEmitter(logger logrus.FieldLogger, metrics *Collector, out io.Writer) *Emitter {
	return &Emitter{
		logger:  logger.WithField("generator", version.AppVersion()),
		metrics: metrics,
		out:     out,
	}
}

// Emit assembles the directive and writes the message followed by a
// newline. Assembly failures are counted before being returned.
func (e *Emitter) Emit(d Directive) error {
	blob, err := Assemble(d)
	if err != nil {
		e.metrics.BuildFailed()
		return errors.Wrap(err, "assembling message")
	}
	if _, err := fmt.Fprintln(e.out, blob); err != nil {
		return errors.Wrap(err, "writing message")
	}
	e.metrics.MessageBuilt(d.kind())
	e.logger.WithFields(logrus.Fields{
		"kind":   d.kind(),
		"method": d.Method,
		"status": d.Status,
	}).Debug("Message emitted")
	return nil
}
