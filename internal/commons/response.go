package commons

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

// PartialResponse reports an operation that completed with per-item failures.
// Success stays true because the batch itself was processed.
func PartialResponse[T any](message string, data T, errors ...string) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
		Errors:  errors,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
