package session

import "github.com/dmitrijs2005/minired/internal/client/models"

type State int

const (
	Uninitialized State = iota
	Initializing
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent view of the session. User is a copy and is nil
// unless State is Authenticated.
type Snapshot struct {
	State State
	User  *models.User
}

func (s Snapshot) IsAuthenticated() bool {
	return s.State == Authenticated
}
