package quote

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Quote is the record served by the remote stock-data endpoint.
// Price is kept as a decimal so it renders exactly as received.
type Quote struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Analysis string          `json:"analysis"`
}

// FailureKind classifies why a fetch produced no quote.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureRequest
	FailureTransport
	FailureStatus
	FailureDecode
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureRequest:
		return "request"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Result is the outcome of FetchQuote: either a quote or a classified failure.
type Result struct {
	Quote Quote
	Kind  FailureKind
	Err   error
}

// OK reports whether the result carries a quote.
func (r Result) OK() bool { return r.Kind == FailureNone && r.Err == nil }

// ErrMissingBaseURL is returned by NewFetcher when no base URL is configured.
var ErrMissingBaseURL = errors.New("BASE_URL is not defined in your environment variables")

// StatusError is returned when the endpoint answers with a non-2xx status.
// Body is whitespace-collapsed so the error always prints on one line.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s -> %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// requestError and decodeError mark the stage a failure happened in so
// FetchQuote can classify it without string matching.
type requestError struct{ err error }

func (e *requestError) Error() string { return "creating request: " + e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

type transportError struct{ err error }

func (e *transportError) Error() string { return "performing request: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decoding stock data: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

// Classify maps an error returned by Fetch to its FailureKind.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	var (
		se *StatusError
		re *requestError
		te *transportError
		de *decodeError
	)
	switch {
	case errors.As(err, &se):
		return FailureStatus
	case errors.As(err, &de):
		return FailureDecode
	case errors.As(err, &re):
		return FailureRequest
	case errors.As(err, &te):
		return FailureTransport
	default:
		return FailureTransport
	}
}
