// Package gateway contains the client-side access layer for the hoot backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the hoot collection, its nested comment sub-resource, and the token
//     exchange endpoints used by sign-in and sign-up.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     current bearer credential to every request, tags requests with a
//     correlation id, and maps non-success responses to RemoteError.
//
// # Error Handling
//
// A non-2xx response surfaces as *RemoteError carrying the status code and
// the server's message verbatim; callers match it with errors.As. Transport
// failures (connection refused, timeouts) wrap ErrUnavailable for errors.Is.
// The gateway never retries; a failed call leaves all local state untouched.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package gateway
