package mediation

import "errors"

// GraphQLError is the one error shape consumers of the API ever see.
// Extensions satisfies the contract graph-gophers checks for when it
// renders a resolver error, so Code lands under extensions.code.
type GraphQLError struct {
	Message string
	Code    int
}

func (e *GraphQLError) Error() string { return e.Message }

// Extensions reports the numeric code when one is known. Unclassified
// failures carry no code at all rather than a guessed one.
func (e *GraphQLError) Extensions() map[string]interface{} {
	if e.Code == 0 {
		return nil
	}
	return map[string]interface{}{"code": e.Code}
}

// Translate converts any failure into the external error shape. It is
// total: classified errors keep their status code and gain the reason as
// a " - " suffix, everything else passes its message through with no
// code. Translating an already translated error is a no-op.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var ext *GraphQLError
	if errors.As(err, &ext) {
		return ext
	}
	var merr *Error
	if errors.As(err, &merr) {
		return &GraphQLError{Message: merr.Error(), Code: merr.Status}
	}
	return &GraphQLError{Message: err.Error()}
}
