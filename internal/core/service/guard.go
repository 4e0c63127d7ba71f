package service

import "github.com/jobportal/portal/internal/core/domain"

// SessionViewer is anything that can report the current session view.
type SessionViewer interface {
	View() domain.SessionView
}

// RequireRole checks that v belongs to a settled, authenticated session with
// one of roles. With no roles any authenticated session passes.
func RequireRole(v domain.SessionView, roles ...domain.Role) error {
	if v.Loading {
		return domain.ErrSessionLoading
	}
	if !v.IsAuthenticated {
		return domain.ErrUnauthenticated
	}
	if len(roles) == 0 {
		return nil
	}
	for _, r := range roles {
		if v.HasRole(r) {
			return nil
		}
	}
	return domain.ErrForbidden
}
