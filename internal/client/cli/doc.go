// Package cli provides the interactive minired command-line client.
//
// It wires configuration, local storage, the session gateway and the post
// service behind a readline REPL. Typical flow: restore the previous session
// while showing a loading line, then execute user commands until "exit".
//
// Key features:
//   - Login / Register / Logout
//   - Feed, post, edit and delete posts
//   - Likes and comments
//   - Profile page, bio and avatar updates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
