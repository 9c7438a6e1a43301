package validation

// Type is the severity of a validation result
type Type string

const (
	TypeError   Type = "error"
	TypeWarning Type = "warning"
)

// Priority orders results when surfacing them to the client
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Error is the result of a single validation check.
// It is transient: produced during a validation pass, never persisted.
type Error struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Type     Type     `json:"type"`
	Priority Priority `json:"priority"`
	Code     string   `json:"code"`
}

// NewError builds an error-severity result
func NewError(field, message, code string, priority Priority) *Error {
	return &Error{Field: field, Message: message, Type: TypeError, Priority: priority, Code: code}
}

// NewWarning builds a warning-severity result. Warnings never block saving.
func NewWarning(field, message, code string, priority Priority) *Error {
	return &Error{Field: field, Message: message, Type: TypeWarning, Priority: priority, Code: code}
}

// IsError reports whether the result blocks submission
func (e *Error) IsError() bool {
	return e != nil && e.Type == TypeError
}

// Partition splits results into blocking errors and soft warnings
func Partition(results []*Error) (errors []*Error, warnings []*Error) {
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Type == TypeError {
			errors = append(errors, res)
		} else {
			warnings = append(warnings, res)
		}
	}
	return errors, warnings
}
