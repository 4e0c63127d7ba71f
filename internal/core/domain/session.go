package domain

// SessionState is the session manager's position in its state machine.
type SessionState string

const (
	SessionUnknown   SessionState = "unknown"
	SessionLoggedOut SessionState = "logged_out"
	SessionLoggedIn  SessionState = "logged_in"
)

// TokenKey is the fixed name the credential token is persisted under.
const TokenKey = "token"

// SessionView is the read-only picture of a session that consumers gate on.
// It is derived from the current user and loading flag every time it is built.
type SessionView struct {
	State           SessionState `json:"state"`
	Loading         bool         `json:"loading"`
	User            *User        `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsAdmin         bool         `json:"isAdmin"`
	IsApplicant     bool         `json:"isApplicant"`
}

// NewSessionView derives a view. The user is cloned.
func NewSessionView(user *User, loading bool) SessionView {
	v := SessionView{
		Loading:         loading,
		User:            user.Clone(),
		IsAuthenticated: user != nil,
	}
	if user != nil {
		v.IsAdmin = user.Role == RoleAdmin
		v.IsApplicant = user.Role == RoleApplicant
	}
	switch {
	case loading:
		v.State = SessionUnknown
	case user != nil:
		v.State = SessionLoggedIn
	default:
		v.State = SessionLoggedOut
	}
	return v
}

// HasRole reports whether the view is authenticated with the given role.
func (v SessionView) HasRole(role Role) bool {
	return v.User != nil && v.User.Role == role
}

// LoginResult is what Login reports. It never carries a Go error; failures
// are described by Error for display.
type LoginResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
