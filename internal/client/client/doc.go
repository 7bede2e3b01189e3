// Package client contains the transport side of the account CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     four account operations: Signup, Login, RequestReset and Reset.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that posts to the
//     server's /api endpoints and decodes the {error} bodies it returns.
//
// # Error Handling
//
// Transport failures (connection refused, timeouts, undecodable replies) are
// reported as ErrUnavailable. Every response the server rejects becomes an
// *APIError carrying the HTTP status and the server's message verbatim.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
