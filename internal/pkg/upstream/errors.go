// Package upstream classifies errors returned by remote collaborators.
//
// Client adapters tag every failure with a gRPC status code: codes.NotFound
// when the owning service reports the record missing, codes.Unavailable when
// the call itself failed at the transport level. The orchestrator currently
// surfaces both the same way, but the distinction stays representable so a
// caller could retry transport failures without retrying validation ones.
package upstream

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether err represents a missing upstream record.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsUnavailable reports whether err represents a transport-level failure.
func IsUnavailable(err error) bool {
	return status.Code(err) == codes.Unavailable
}

// Detail returns the human-readable message carried by a status error,
// or the plain error text for anything else.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	return status.Convert(err).Message()
}
