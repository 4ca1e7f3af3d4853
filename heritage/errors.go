package heritage

import "fmt"

// InvalidParameterError reports a structurally invalid query before any
// request is issued.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// MalformedResponseError reports a response that matched the expected
// schema shape but is missing a required field or carries a value that
// cannot be coerced. Value is empty when the field was absent.
type MalformedResponseError struct {
	Field string
	Value string
}

func (e *MalformedResponseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("malformed response: missing required field %s", e.Field)
	}
	return fmt.Sprintf("malformed response: field %s has non-numeric value %q", e.Field, e.Value)
}

// SchemaMismatchError reports a response whose overall structure does
// not match the schema expected for the operation.
type SchemaMismatchError struct {
	Expected string
	Found    string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: expected %s, found %s", e.Expected, e.Found)
}
