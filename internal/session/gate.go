package session

import "eiffel-bike-client/internal/domain/identity"

const (
	LoginPath     = "/login"
	HomePath      = "/"
	DashboardPath = "/dashboard"
	SalesPath     = "/sales"
	OfferPath     = "/offer"
)

// Decision is the outcome of a navigation gate check: either the route may
// activate, or the caller must redirect to Target.
type Decision struct {
	Allowed bool
	Target  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Redirect(target string) Decision {
	return Decision{Target: target}
}

// CanEnter decides whether the current session may activate a route gated by
// requiredRoles. Pure and idempotent: it never mutates session state, the
// redirect signal is its only output. The decision is advisory; every
// protected backend endpoint re-checks authorization server-side.
func CanEnter(current *identity.Claim, requiredRoles []identity.Role) Decision {
	if current == nil {
		return Redirect(LoginPath)
	}
	// An empty role list gates on the session alone.
	if len(requiredRoles) == 0 || current.HasRole(requiredRoles) {
		return Allow()
	}
	return Redirect(HomePath)
}

// LandingPath picks the post-login destination for a role: marketplace for
// ordinary buyers, offer management for the corp, dashboard otherwise.
func LandingPath(role identity.Role) string {
	switch role {
	case identity.RoleOrdinary:
		return SalesPath
	case identity.RoleEiffelBikeCorp:
		return OfferPath
	default:
		return DashboardPath
	}
}
