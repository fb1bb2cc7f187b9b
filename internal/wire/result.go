package wire

// Error is the err arm of a Result.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// Result is the response discriminant: exactly one of Ok and Err is set.
type Result[T any] struct {
	RequestID string `json:"request_id,omitempty"`
	Ok        *T     `json:"ok,omitempty"`
	Err       *Error `json:"err,omitempty"`
}

func Ok[T any](v T) Result[T] { return Result[T]{Ok: &v} }

func Err[T any](code, message string) Result[T] {
	return Result[T]{Err: &Error{Code: code, Message: message}}
}
