// Package feedview holds client-visible state for a feed or profile
// surface on top of the post and relationship services. Mutations are
// applied to the local snapshot first and reconciled against the
// authoritative store on completion: confirmed results stand as-is,
// failed ones are rolled back by reloading from the service.
package feedview

// State is the lifecycle position of one optimistic mutation.
type State int

const (
	Idle State = iota
	Optimistic
	Confirmed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Optimistic:
		return "optimistic"
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// Mutation reports how an optimistic mutation ended. Err is set only
// when the mutation was rolled back; failures are surfaced once and
// never retried automatically.
type Mutation struct {
	State State
	Err   error
}

func confirmed() Mutation {
	return Mutation{State: Confirmed}
}

func rolledBack(err error) Mutation {
	return Mutation{State: RolledBack, Err: err}
}
