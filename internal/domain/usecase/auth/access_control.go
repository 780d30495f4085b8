package auth

import (
	"github.com/raghavmehta/expense-ledger/internal/domain/entity"
	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
)

// Access control: every gated operation moves through
// Unauthenticated -> Authenticated(role) -> {granted, denied}. There is no
// retry; a denied attempt must be re-initiated by a fresh request.

// RequireSession checks that an authenticated identity is present.
// Without one, no data fetch may be attempted.
func RequireSession(sess *usecase.SessionContext) error {
	if sess == nil || sess.UserID == 0 {
		return errs.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin checks that the session's stored role grants the admin view.
// A present identity whose role is not admin is denied with ErrForbidden and
// must be routed back to the standard user view.
func RequireAdmin(sess *usecase.SessionContext) error {
	if err := RequireSession(sess); err != nil {
		return err
	}
	if sess.Role != entity.RoleAdmin {
		return errs.ErrForbidden
	}
	return nil
}

// LandingFor resolves which view a fresh login routes to based on the
// stored role
func LandingFor(role entity.Role) usecase.Landing {
	if role == entity.RoleAdmin {
		return usecase.LandingAdmin
	}
	return usecase.LandingUser
}
