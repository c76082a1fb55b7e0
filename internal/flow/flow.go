// Package flow models the portal's screens as a tagged variant set and
// derives which screens a session may move to next. The presentation layer
// stays outside this table; a locked stage is rejected here, not merely
// hidden.
package flow

import "github.com/spec-kit/fit-training-service/internal/domain"

// Screen enumerates the portal's screens.
type Screen string

const (
	ScreenLanding        Screen = "landing"
	ScreenLogin          Screen = "login"
	ScreenRegister       Screen = "register"
	ScreenDashboard      Screen = "dashboard"
	ScreenVideo          Screen = "video"
	ScreenQuiz           Screen = "quiz"
	ScreenPendingFit     Screen = "pending-fit"
	ScreenAdminDashboard Screen = "admin-dashboard"
)

// Session carries the facts the flow table depends on.
type Session struct {
	Authenticated bool
	Admin         bool
	Status        domain.TraineeStatus
}

// Permitted returns the screens reachable from current under the session.
func Permitted(current Screen, s Session) []Screen {
	if s.Admin {
		switch current {
		case ScreenLanding, ScreenLogin:
			return []Screen{ScreenAdminDashboard}
		default:
			return []Screen{ScreenAdminDashboard, ScreenLanding}
		}
	}

	if !s.Authenticated {
		switch current {
		case ScreenLanding:
			return []Screen{ScreenLogin, ScreenRegister}
		case ScreenLogin:
			return []Screen{ScreenLanding, ScreenRegister}
		case ScreenRegister:
			return []Screen{ScreenLanding}
		default:
			return []Screen{ScreenLanding}
		}
	}

	stages := domain.DeriveStages(s.Status)
	switch current {
	case ScreenDashboard:
		out := []Screen{ScreenLanding, ScreenVideo}
		if stages.Quiz.Unlocked {
			out = append(out, ScreenQuiz)
		}
		if stages.FitTicket.Unlocked {
			out = append(out, ScreenPendingFit)
		}
		return out
	case ScreenVideo, ScreenQuiz, ScreenPendingFit:
		return []Screen{ScreenDashboard, ScreenLanding}
	default:
		return []Screen{ScreenDashboard, ScreenLanding}
	}
}

// Allowed reports whether target is reachable from current under the session.
func Allowed(current, target Screen, s Session) bool {
	for _, sc := range Permitted(current, s) {
		if sc == target {
			return true
		}
	}
	return false
}
