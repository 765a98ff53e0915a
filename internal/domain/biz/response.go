package biz

// Response is the envelope every service operation returns. Data is the zero
// value of T when the operation carries no payload or failed validation.
type Response[T any] struct {
	Status             ServiceStatus
	Data               T
	ValidationFailures []ValidationFailure
}

// StatusResponse is the payload-free envelope used by modify and delete.
type StatusResponse = Response[struct{}]

func NewResponse[T any](status ServiceStatus, data T) Response[T] {
	return Response[T]{Status: status, Data: data}
}

func NewStatusResponse(status ServiceStatus) StatusResponse {
	return StatusResponse{Status: status}
}

func Invalid[T any](failures []ValidationFailure) Response[T] {
	return Response[T]{Status: StatusValidationFailed, ValidationFailures: failures}
}

func (r Response[T]) IsValid() bool {
	return len(r.ValidationFailures) == 0
}
