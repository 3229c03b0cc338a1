package bridge

import "fmt"

// State is the lifecycle state of a Component.
type State uint8

const (
	StateUnmounted State = iota
	StateInitializing
	StateMounted
	StateUpdating
	StateUnmounting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "Unmounted"
	case StateInitializing:
		return "Initializing"
	case StateMounted:
		return "Mounted"
	case StateUpdating:
		return "Updating"
	case StateUnmounting:
		return "Unmounting"
	default:
		return "Unknown"
	}
}

// UnmountPolicy decides what happens to NextTick callbacks still queued when
// a component unmounts.
type UnmountPolicy string

const (
	// UnmountDrop discards pending callbacks.
	UnmountDrop UnmountPolicy = "drop"

	// UnmountFlush runs pending callbacks after beforeDestroy.
	UnmountFlush UnmountPolicy = "flush"
)

// ParseUnmountPolicy parses "drop" or "flush". The empty string is UnmountDrop.
func ParseUnmountPolicy(s string) (UnmountPolicy, error) {
	switch UnmountPolicy(s) {
	case "", UnmountDrop:
		return UnmountDrop, nil
	case UnmountFlush:
		return UnmountFlush, nil
	}
	return "", fmt.Errorf("bridge: unknown unmount policy %q", s)
}
