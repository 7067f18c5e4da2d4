package statusflow

// AuthorityKind discriminates who (or what) is driving a transition.
type AuthorityKind int

const (
	// AuthorityAutomated is a system-triggered transition (payment webhook, sweeper).
	AuthorityAutomated AuthorityKind = iota
	// AuthorityUser is a signed-in, non-admin human actor.
	AuthorityUser
	// AuthorityAdmin is a human actor with admin privileges.
	AuthorityAdmin
)

// Authority is the capability token carried by every transition call. It replaces
// the loose (isAdmin bool, actorID *string) pair so admin gating and the terminal
// override exceptions are decided off a single value.
type Authority struct {
	Kind    AuthorityKind
	ActorID string
}

// Automated returns the authority used for system-triggered transitions.
// Its actor reference is nil on audit records.
func Automated() Authority {
	return Authority{Kind: AuthorityAutomated}
}

// User returns a non-admin human authority.
func User(actorID string) Authority {
	return Authority{Kind: AuthorityUser, ActorID: actorID}
}

// Admin returns an admin human authority.
func Admin(actorID string) Authority {
	return Authority{Kind: AuthorityAdmin, ActorID: actorID}
}

func (a Authority) IsAdmin() bool {
	return a.Kind == AuthorityAdmin
}

// ActorRef returns the actor id for audit records, nil for automated transitions.
func (a Authority) ActorRef() *string {
	if a.Kind == AuthorityAutomated || a.ActorID == "" {
		return nil
	}
	id := a.ActorID
	return &id
}
