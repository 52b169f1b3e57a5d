/*
Package message provides types and builders to assemble outbound ADTP
messages.

ADTP is a JSON-based application protocol. A message is either a request
(an operation verb aimed at a resource) or a response (an outcome status),
both carrying a protocol version tag, a header map and an opaque content
string. This package only assembles and serializes messages; it never
parses received ones, never validates field values and never touches a
network. Delivery belongs to whatever transport layer consumes the
serialized text.

Builders are fluent: every setter mutates the builder in place and returns
it, and Build snapshots the current state into the wire form without
resetting anything, so a builder can be mutated and built again.

	blob, err := message.NewRequest().
		SetMethod(message.OperationRead).
		SetURI("/example").
		AddHeader("Content-Type", "application/json").
		SetContent(`{"key":"value"}`).
		Build()

A builder instance is caller-local state and is not safe for concurrent
mutation.
*/
package message
