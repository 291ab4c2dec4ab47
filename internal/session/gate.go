package session

// Decision is the outcome of a route-level authorization check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated operator to the login flow.
	RedirectLogin
	// Denied shows an explicit access-denied message to an authenticated
	// operator who lacks the admin role.
	Denied
)

// DeniedMessage is the explicit refusal shown for Denied, rather than
// silently hiding the view.
const DeniedMessage = "Access denied: this area requires administrator privileges."

// Authorize is the route-level gate: login redirect when unauthenticated,
// explicit denial when authenticated but not admin.
func (s *Session) Authorize() Decision {
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	if !s.IsAdmin() {
		return Denied
	}
	return Allow
}

// Gate returns view when the operator is an admin, else fallback. This hides
// UI affordances only; it is not a security boundary.
func Gate[T any](s *Session, view, fallback T) T {
	if s.IsAdmin() {
		return view
	}
	return fallback
}
