package emit

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// headerFieldPrefix marks form keys carrying header entries.
const headerFieldPrefix = "header."

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// FromForm decodes an urlencoded form string into a directive, e.g.
// "method=read&uri=/x&header.Content-Type=application/json". Keys prefixed
// with "header." become header entries; everything else maps onto the
// directive fields.
func FromForm(s string) (Directive, error) {
	var d Directive

	values, err := url.ParseQuery(s)
	if err != nil {
		return d, errors.Wrap(err, "parsing form directive")
	}

	headers := map[string]string{}
	for key := range values {
		if strings.HasPrefix(key, headerFieldPrefix) {
			headers[strings.TrimPrefix(key, headerFieldPrefix)] = values.Get(key)
			delete(values, key)
		}
	}

	if err := formDecoder.Decode(&d, values); err != nil {
		return d, errors.Wrap(err, "decoding form directive")
	}
	if len(headers) > 0 {
		d.Headers = headers
	}

	return d, nil
}

// FromJSON decodes a JSON directive object. Header values are coerced to
// strings so loosely typed documents, e.g. numeric header values, are
// accepted. This decodes the directive input format of this toolkit, not
// ADTP wire messages.
func FromJSON(blob []byte) (Directive, error) {
	var raw struct {
		Kind    string      `json:"kind"`
		Version string      `json:"version"`
		Method  string      `json:"method"`
		Status  string      `json:"status"`
		URI     string      `json:"uri"`
		Content string      `json:"content"`
		Headers interface{} `json:"headers"`
		StampID bool        `json:"stamp_id"`
	}
	if err := json.Unmarshal(blob, &raw); err != nil {
		return Directive{}, errors.Wrap(err, "decoding directive")
	}

	d := Directive{
		Kind:    raw.Kind,
		Version: raw.Version,
		Method:  raw.Method,
		Status:  raw.Status,
		URI:     raw.URI,
		Content: raw.Content,
		StampID: raw.StampID,
	}
	if raw.Headers != nil {
		headers, err := cast.ToStringMapStringE(raw.Headers)
		if err != nil {
			return d, errors.Wrap(err, "coercing directive headers")
		}
		d.Headers = headers
	}

	return d, nil
}
