package models

// Error taxonomy surfaced to the HTTP layer. helper.GetStatusCode maps
// each type to a status; none of them abort the process.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorValidation carries field-level messages. A request that fails
// validation is rejected whole; nothing is partially applied.
type ErrorValidation struct {
	Fields map[string]string
}

func (e ErrorValidation) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}
