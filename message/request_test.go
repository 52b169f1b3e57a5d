package message_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ApplePieCodes/adtp-go/message"
)

func TestRequestBuilder_Defaults(t *testing.T) {
	blob, err := message.NewRequest().Build()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"ADTP/2.0","method":"check","headers":{},"uri":"","content":""}`
	if blob != want {
		t.Errorf("unexpected default build; have %s, want %s", blob, want)
	}
}

func TestRequestBuilder_SettersReturnSameInstance(t *testing.T) {
	b := message.NewRequest()
	if ret := b.SetVersion(message.VersionADTP20); ret != b {
		t.Error("SetVersion returned a different instance")
	}
	if ret := b.SetMethod(message.OperationRead); ret != b {
		t.Error("SetMethod returned a different instance")
	}
	if ret := b.AddHeader("X", "1"); ret != b {
		t.Error("AddHeader returned a different instance")
	}
	if ret := b.SetURI("/example"); ret != b {
		t.Error("SetURI returned a different instance")
	}
	if ret := b.SetContent("payload"); ret != b {
		t.Error("SetContent returned a different instance")
	}
}

// Chained calls and sequential calls on a separately held reference must
// accumulate the same state.
func TestRequestBuilder_ChainingEquivalence(t *testing.T) {
	chained := message.NewRequest().
		SetMethod(message.OperationUpdate).
		SetURI("/things/42").
		AddHeader("Accept", "application/json").
		SetContent("body")

	sequential := message.NewRequest()
	sequential.SetMethod(message.OperationUpdate)
	sequential.SetURI("/things/42")
	sequential.AddHeader("Accept", "application/json")
	sequential.SetContent("body")

	have, err := chained.Build()
	if err != nil {
		t.Fatal(err)
	}
	want, err := sequential.Build()
	if err != nil {
		t.Fatal(err)
	}
	if have != want {
		t.Errorf("chained and sequential builds differ; have %s, want %s", have, want)
	}
}

func TestRequestBuilder_HeaderOverwrite(t *testing.T) {
	b := message.NewRequest().
		AddHeader("X", "1").
		AddHeader("X", "2")

	msg := b.Message()
	if have, want := len(msg.Headers), 1; have != want {
		t.Fatalf("unexpected header count; have %d, want %d", have, want)
	}
	if have, want := msg.Headers["X"], "2"; have != want {
		t.Errorf("unexpected header value; have %s, want %s", have, want)
	}
}

func TestRequestBuilder_BuildIsIdempotent(t *testing.T) {
	b := message.NewRequest().
		SetMethod(message.OperationCreate).
		SetURI("/example").
		AddHeader("Content-Type", "application/json").
		SetContent(`{"key":"value"}`)

	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("consecutive builds differ; first %s, second %s", first, second)
	}
}

// Build does not freeze the builder: mutations after a build are reflected
// by the next build.
func TestRequestBuilder_ReusableAfterBuild(t *testing.T) {
	b := message.NewRequest().SetURI("/one")
	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	second, err := b.SetURI("/two").Build()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("build output did not change after mutation")
	}

	var decoded struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal([]byte(second), &decoded); err != nil {
		t.Fatal(err)
	}
	if have, want := decoded.URI, "/two"; have != want {
		t.Errorf("unexpected uri; have %s, want %s", have, want)
	}
}

func TestRequestBuilder_MessageSnapshot(t *testing.T) {
	b := message.NewRequest().AddHeader("X", "1")
	snapshot := b.Message()

	b.AddHeader("X", "2").AddHeader("Y", "3").SetURI("/mutated")

	if have, want := snapshot.Headers["X"], "1"; have != want {
		t.Errorf("snapshot header mutated; have %s, want %s", have, want)
	}
	if _, ok := snapshot.Headers["Y"]; ok {
		t.Error("snapshot gained a header added after the snapshot was taken")
	}
	if snapshot.URI != "" {
		t.Errorf("snapshot uri mutated; have %s, want empty", snapshot.URI)
	}
}

// The serialized form must parse back to exactly the builder's current
// field values, nested headers included.
func TestRequestBuilder_RoundTrip(t *testing.T) {
	blob, err := message.NewRequest().
		SetMethod(message.OperationRead).
		SetURI("/example").
		AddHeader("Content-Type", "application/json").
		AddHeader("X-Tenant", "t-1").
		SetContent(`{"key":"value"}`).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	var have struct {
		Version string            `json:"version"`
		Method  string            `json:"method"`
		Headers map[string]string `json:"headers"`
		URI     string            `json:"uri"`
		Content string            `json:"content"`
	}
	if err := json.Unmarshal([]byte(blob), &have); err != nil {
		t.Fatalf("build output is not valid JSON: %v", err)
	}

	want := struct {
		Version string
		Method  string
		Headers map[string]string
		URI     string
		Content string
	}{
		Version: "ADTP/2.0",
		Method:  "read",
		Headers: map[string]string{
			"Content-Type": "application/json",
			"X-Tenant":     "t-1",
		},
		URI:     "/example",
		Content: `{"key":"value"}`,
	}

	if have.Version != want.Version {
		t.Errorf("unexpected version; have %s, want %s", have.Version, want.Version)
	}
	if have.Method != want.Method {
		t.Errorf("unexpected method; have %s, want %s", have.Method, want.Method)
	}
	if !reflect.DeepEqual(have.Headers, want.Headers) {
		t.Errorf("unexpected headers; have %v, want %v", have.Headers, want.Headers)
	}
	if have.URI != want.URI {
		t.Errorf("unexpected uri; have %s, want %s", have.URI, want.URI)
	}
	if have.Content != want.Content {
		t.Errorf("unexpected content; have %s, want %s", have.Content, want.Content)
	}
}

// Permissiveness is part of the contract: empty, odd or malformed values
// pass through verbatim.
func TestRequestBuilder_VerbatimValues(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"empty", ""},
		{"relative", "things/42"},
		{"absolute", "adtp://host:9/x"},
		{"malformed", "::not a uri::"},
		{"spaces", "  /padded  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := message.NewRequest().SetURI(tt.uri).Build()
			if err != nil {
				t.Fatal(err)
			}
			var decoded struct {
				URI string `json:"uri"`
			}
			if err := json.Unmarshal([]byte(blob), &decoded); err != nil {
				t.Fatal(err)
			}
			if have, want := decoded.URI, tt.uri; have != want {
				t.Errorf("uri was not preserved verbatim; have %q, want %q", have, want)
			}
		})
	}
}
