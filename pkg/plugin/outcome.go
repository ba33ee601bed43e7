package plugin

// State is the result of loading a plugin.
type State int

// Loader states. The zero value is Unavailable so an unset Outcome never
// installs anything.
const (
	StateUnavailable State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "unavailable"
}

// Reason explains an Unavailable outcome.
type Reason int

// Reasons.
const (
	ReasonNone Reason = iota
	ReasonLoadFailed
	ReasonIncompatible
)

func (r Reason) String() string {
	switch r {
	case ReasonLoadFailed:
		return "load failed"
	case ReasonIncompatible:
		return "incompatible structure"
	default:
		return "none"
	}
}

// Outcome is the immutable result of Loader.Load.
type Outcome struct {
	State  State
	Reason Reason
	Plugin *Plugin // set only when State is StateReady
	Err    error   // cause of an Unavailable outcome
}

// Ready returns the plugin and true if loading succeeded.
func (o Outcome) Ready() (*Plugin, bool) {
	if o.State != StateReady || o.Plugin == nil {
		return nil, false
	}
	return o.Plugin, true
}

func readyOutcome(p *Plugin) Outcome {
	return Outcome{State: StateReady, Plugin: p}
}

func unavailableOutcome(reason Reason, err error) Outcome {
	return Outcome{State: StateUnavailable, Reason: reason, Err: err}
}
