package booking

import (
	"github.com/medibookhq/medibook-api/internal/audit"
	"github.com/medibookhq/medibook-api/internal/notification"
)

// Session is the caller's identity, injected explicitly instead of read from
// ambient state so tests can run any identity without global setup.
type Session struct {
	UserID string
	Role   string
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Notifier and Auditor are the fire-and-forget side channels every write
// use case feeds. Both are satisfied by the channel-backed dispatchers.
type Notifier interface {
	Dispatch(ev notification.Event)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}
