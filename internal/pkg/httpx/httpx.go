// Package httpx implements the JSON conventions shared by every service:
// a plain body for successful responses and an error envelope carrying a
// gRPC status code name plus a human-readable detail.
//
// The same envelope is produced by servers (WriteStatusError) and consumed
// by client adapters (ErrorFromResponse), so a status error survives a full
// HTTP round trip with its code intact.
package httpx

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorResponse is the canonical error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON encodes v as JSON with the given HTTP status.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteStatusError writes err as an error envelope. Non-status errors are
// treated as codes.Internal.
func WriteStatusError(w http.ResponseWriter, err error) {
	st := status.Convert(err)
	WriteJSON(w, HTTPStatus(st.Code()), ErrorResponse{
		Error:   st.Code().String(),
		Message: st.Message(),
	})
}

// HTTPStatus maps a gRPC status code to the HTTP status used on the wire.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorFromResponse rebuilds a status error from a non-2xx response.
// If the body is not a valid envelope the code is inferred from the HTTP
// status instead, so callers always get a tagged error back.
func ErrorFromResponse(resp *http.Response) error {
	var envelope ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		return status.Error(codeFromString(envelope.Error), envelope.Message)
	}
	return status.Errorf(codeFromHTTP(resp.StatusCode), "unexpected response status %d", resp.StatusCode)
}

func codeFromString(name string) codes.Code {
	for _, c := range []codes.Code{
		codes.InvalidArgument,
		codes.NotFound,
		codes.AlreadyExists,
		codes.Unavailable,
		codes.DeadlineExceeded,
		codes.Internal,
	} {
		if c.String() == name {
			return c
		}
	}
	return codes.Unknown
}

func codeFromHTTP(statusCode int) codes.Code {
	switch statusCode {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
