package infra

import (
	"errors"
	"log/slog"

	"bellebook/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError tags every failure crossing an infrastructure boundary with a
// kind the usecase layer can branch on without knowing transport details.
type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// Message is the upstream's human-readable message when one was parseable,
// e.g. "slot no longer available". Empty for transport-level failures.
func (e GatewayError) Message() string {
	return e.msg
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	slogger.Error("Gateway error: "+msg,
		slog.String("kind", string(kind)),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindMessage extracts the upstream message for a given kind, when present.
func KindMessage(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.msg
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindUnauthenticated GatewayErrorKind = "UNAUTHENTICATED" // 401: fatal to the wizard session
	KindNotFound        GatewayErrorKind = "NOT_FOUND"
	KindBusinessRule    GatewayErrorKind = "BUSINESS_RULE" // 4xx with a server message
	KindUnavailable     GatewayErrorKind = "UNAVAILABLE"   // transport failure, timeout, unparseable body
	KindConflict        GatewayErrorKind = "CONFLICT"      // concurrent session update lost the race
)
