package domain

import (
	"errors"
	"fmt"
	"strings"
)

// StatusSuccess is the envelope status the backend uses for a successful operation.
const StatusSuccess = "SUCCESS"

// TransportKind classifies why a request never produced a meaningful response.
type TransportKind string

const (
	KindNetwork TransportKind = "NETWORK"
	KindStatus  TransportKind = "STATUS"
	KindDecode  TransportKind = "DECODE"
	KindSchema  TransportKind = "SCHEMA"
)

// TransportError means the request never reached a meaningful server response.
// It is shown to the user as a generic failure.
type TransportError struct {
	Kind    TransportKind
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport %s: %s: %v", strings.ToLower(string(e.Kind)), e.Message, e.Err)
	}
	return fmt.Sprintf("transport %s: %s", strings.ToLower(string(e.Kind)), e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DomainError is a well-formed backend response whose status is not SUCCESS.
// Message is the backend-authored text and is shown verbatim.
type DomainError struct {
	Status     string
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend status %s", e.Status)
	}
	return e.Message
}

// ValidationError is raised client-side before any request is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Outcome is the tagged result of a contract call.
type Outcome int

const (
	Ok Outcome = iota
	DomainFailure
	TransportFailure
	ValidationFailure
)

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case DomainFailure:
		return "domain failure"
	case TransportFailure:
		return "transport failure"
	case ValidationFailure:
		return "validation failure"
	}
	return "unknown"
}

// Classify maps an error returned by a contract call onto its Outcome.
// Errors outside the taxonomy (context cancellation, local state errors)
// are treated as transport failures since no server answer was applied.
func Classify(err error) Outcome {
	if err == nil {
		return Ok
	}

	var de *DomainError
	if errors.As(err, &de) {
		return DomainFailure
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ValidationFailure
	}

	return TransportFailure
}

// UserMessage returns the text a screen should display for err.
// Domain and validation messages are surfaced verbatim; everything else
// collapses to the generic fallback.
func UserMessage(err error, fallback string) string {
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	return fallback
}
