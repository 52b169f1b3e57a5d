package message

// OperationKind is the verb of a request: what the sender asks the receiver
// to do with the target resource. Exactly one per request.
type OperationKind string

// Operation verbs defined by ADTP/2.0. The constant values are the literal
// wire tags and must not change.
const (
	OperationCheck   OperationKind = "check"
	OperationRead    OperationKind = "read"
	OperationCreate  OperationKind = "create"
	OperationUpdate  OperationKind = "update"
	OperationAppend  OperationKind = "append"
	OperationDestroy OperationKind = "destroy"
	OperationAuth    OperationKind = "auth"
)

// OperationKinds lists every operation verb, in protocol order.
var OperationKinds = []OperationKind{
	OperationCheck,
	OperationRead,
	OperationCreate,
	OperationUpdate,
	OperationAppend,
	OperationDestroy,
	OperationAuth,
}

func (k OperationKind) String() string {
	return string(k)
}
