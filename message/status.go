package message

// ResultStatus is the outcome code of a response. Exactly one per response.
type ResultStatus string

// Outcome codes defined by ADTP/2.0. The constant values are the literal
// wire tags and must not change.
const (
	StatusSwitchProtocols ResultStatus = "switch-protocols"
	StatusOK              ResultStatus = "ok"
	StatusPending         ResultStatus = "pending"
	StatusRedirect        ResultStatus = "redirect"
	StatusDenied          ResultStatus = "denied"
	StatusBadRequest      ResultStatus = "bad-request"
	StatusUnauthorized    ResultStatus = "unauthorized"
	StatusNotFound        ResultStatus = "not-found"
	StatusTooManyRequests ResultStatus = "too-many-requests"
	StatusInternalError   ResultStatus = "internal-error"
)

// ResultStatuses lists every outcome code, in protocol order.
var ResultStatuses = []ResultStatus{
	StatusSwitchProtocols,
	StatusOK,
	StatusPending,
	StatusRedirect,
	StatusDenied,
	StatusBadRequest,
	StatusUnauthorized,
	StatusNotFound,
	StatusTooManyRequests,
	StatusInternalError,
}

func (s ResultStatus) String() string {
	return string(s)
}
