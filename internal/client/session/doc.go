// Package session holds the client's authentication state.
//
// A Gateway is the single owner of "who is logged in". It is the only
// component that stores, installs or forgets the credential token, and the
// only place where the session State changes:
//
//	Uninitialized -> Initializing -> Authenticated | Anonymous
//	Authenticated -> Anonymous      (logout, token rejected)
//	Anonymous     -> Authenticated  (login, register)
//	Authenticated -> Authenticated  (profile update, re-login, verify)
//
// # Ordering
//
// Initialize, Login, Register, UpdateProfile and Verify run one at a time in
// the order they acquire the operation lock. Logout and HandleUnauthorized do
// not queue behind them: they move the session epoch forward, and an operation
// that completes under an older epoch drops its result and returns
// ErrSuperseded. The last submitted change wins, not the last completed one.
// Initialize is the exception: an overtaken restore still returns nil, since
// there is nothing left for the caller to undo.
//
// # Errors
//
// Login and Register fail with *AuthenticationError, UpdateProfile with
// *ProfileUpdateError. Both carry a user facing Message (the server's "error"
// text or a fallback) and unwrap to the cause, so errors.Is(err,
// client.ErrUnavailable) tells a network problem from a rejection.
package session
