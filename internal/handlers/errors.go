package handlers

import (
	"encoding/json"
	"net/http"

	"webshop-api/pkg/lambda"
)

// ErrorKind enumerates every failure a handler can answer with. A closed
// enum keeps the kind-to-response mapping total: there is no string-keyed
// table lookup that can shadow an entry or miss one.
type ErrorKind int

const (
	// ErrMissingBody: a body-bearing operation received an empty body.
	ErrMissingBody ErrorKind = iota
	// ErrBadJSON: the body is not well-formed JSON.
	ErrBadJSON
	// ErrMissingParams: a required field or path parameter is absent.
	ErrMissingParams
	// ErrWrongParamFormat: a field has the wrong type.
	ErrWrongParamFormat
	// ErrIDFormat: an identifier fails the canonical pattern.
	ErrIDFormat
	// ErrWrongParams: a field is semantically invalid (non-positive price).
	ErrWrongParams
	// ErrDatabase: a store operation failed.
	ErrDatabase
	// ErrItemNotFound: the record does not exist, or a mutation removed
	// nothing.
	ErrItemNotFound
)

// StatusCode returns the HTTP status for the kind.
func (k ErrorKind) StatusCode() int {
	if k == ErrDatabase {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// Message returns the plain-text response body for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case ErrMissingBody:
		return "Error: empty request"
	case ErrBadJSON:
		return "Error: JSON format"
	case ErrMissingParams:
		return "Error: missing parameters"
	case ErrWrongParamFormat:
		return "Error: parameters in wrong format"
	case ErrIDFormat:
		return "Error: invalid id"
	case ErrWrongParams:
		return "Error: invalid parameters"
	case ErrDatabase:
		return "Error: database could not process request"
	case ErrItemNotFound:
		return "Error: there is no this item in database"
	default:
		return "Error"
	}
}

// errorResponse formats a validation or store failure as plain text.
func errorResponse(kind ErrorKind) *lambda.Response {
	return &lambda.Response{
		StatusCode: kind.StatusCode(),
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       []byte(kind.Message()),
	}
}

// okResponse formats a successful outcome as a 200 JSON body.
func okResponse(v any) (*lambda.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

// writeFailureResponse surfaces a product write failure as a raw 504
// carrying the underlying error detail. Shop writes answer with
// ErrDatabase instead; the asymmetry is part of the documented contract.
func writeFailureResponse(err error) *lambda.Response {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return &lambda.Response{
		StatusCode: http.StatusGatewayTimeout,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

// deleteConfirmation is the body returned by both delete operations.
type deleteConfirmation struct {
	Msg string `json:"msg"`
}

var deleteOK = deleteConfirmation{Msg: "delete item successfully!"}
