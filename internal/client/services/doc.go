// Package services contains the application services the minired CLI uses
// besides the session gateway: reading the feed and working with posts,
// likes and comments.
//
// Services share the gateway's API client and never touch the credential
// token themselves.
package services
