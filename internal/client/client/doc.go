// Package client talks to the storefront REST backend.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts split by concern (AuthAPI, CraftAPI,
//     CategoryAPI, SaleAPI) combined into Client.
//  2. HTTPClient, the net/http implementation. It attaches the bearer
//     token and an X-Request-ID to each call, encodes JSON or multipart
//     bodies, and adapts every endpoint's notion of success to a single
//     (value, error) result.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx answers, and 2xx answers
// that the endpoint defines as failures (a login without a token), are
// returned as *Failure carrying the server message; a Failure with status
// 401/403 or 404 also matches ErrUnauthorized or ErrNotFound through
// errors.Is. Use Message to render a notice.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; no timeout is applied unless one was configured.
package client
