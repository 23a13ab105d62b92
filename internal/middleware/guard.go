package middleware

import (
	"MedSyncAI/internal/routes"
	"MedSyncAI/internal/session"
)

// Verdict is what the access guard decided for one render.
type Verdict int

const (
	Render Verdict = iota
	Placeholder
	Redirect
)

func (v Verdict) String() string {
	switch v {
	case Render:
		return "render"
	case Placeholder:
		return "placeholder"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Decide is evaluated on every render against the current snapshot.
// Public entries always render. Guarded entries wait while the session is
// loading and send anyone unauthenticated to the sign-in page.
func Decide(entry routes.Entry, snap session.Snapshot) Verdict {
	if !entry.Guarded {
		return Render
	}
	switch snap.State {
	case session.StateAuthenticated:
		return Render
	case session.StateLoading:
		return Placeholder
	default:
		return Redirect
	}
}
