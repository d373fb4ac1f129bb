package drawsrv

// request ops
const (
	OpInt   = "int"
	OpFloat = "float"
	OpState = "state"
	OpReset = "reset"
)

// response error codes
const (
	CodeInvalidRange = "invalid_range"
	CodeBadRequest   = "bad_request"
)

// Request is one client message. Low and High are required for OpInt.
type Request struct {
	Op   string `json:"op"`
	Low  *int64 `json:"low,omitempty"`
	High *int64 `json:"high,omitempty"`
}

// IntRequest builds an OpInt request for [low, high].
func IntRequest(low, high int64) Request {
	return Request{Op: OpInt, Low: &low, High: &high}
}

// Response answers a Request. State is the generator state after the op.
type Response struct {
	Op    string   `json:"op"`
	Int   *int64   `json:"int,omitempty"`
	Float *float64 `json:"float,omitempty"`
	State int64    `json:"state"`
	Code  string   `json:"code,omitempty"`
	Error string   `json:"error,omitempty"`
}
