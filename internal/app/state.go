package app

// State is the host lifecycle position. Transitions only move forward and each one
// happens at most once per Application.
type State int

const (
	Uninitialized State = iota
	WindowCreated
	ManagersInitialised
	Looping
	ManagersShutdown
	Terminated
)

var stateNames = [...]string{
	Uninitialized:       "uninitialized",
	WindowCreated:       "window-created",
	ManagersInitialised: "managers-initialised",
	Looping:             "looping",
	ManagersShutdown:    "managers-shutdown",
	Terminated:          "terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
