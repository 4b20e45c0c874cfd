// Package client contains the client-side transport of minired.
//
// # Overview
//
// The package provides:
//  1. The API contract of the backend (see the Client interface): auth
//     endpoints, posts, likes, comments and the health check.
//  2. A concrete HTTP implementation (see HTTPClient) that holds the current
//     credential token, attaches it as a bearer header to every request, tags
//     requests with an X-Request-ID and maps failures to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures and timeouts are reported as ErrUnavailable. Non-2xx
// answers come back as *APIError; errors.Is matches it against
// ErrUnauthorized, ErrForbidden, ErrNotFound and ErrUnavailable.
//
// # Unauthorized hook
//
// When a request that carried a token is rejected with 401, the handler set
// with WithUnauthorizedHandler is called with that token. Login and register
// never trigger it.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; a per-request timeout is applied on top of it.
package client
