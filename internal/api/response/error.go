package response

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Detail  string       `json:"detail"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e Error) Error() string {
	return e.Detail
}

func NewError(code int, detail string) Error {
	return Error{
		Success: false,
		Code:    code,
		Detail:  detail,
	}
}
