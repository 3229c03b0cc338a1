// Package bridge generates host component classes from source component
// definitions.
//
// Generate snapshots a definition together with its mixin and constructor
// args into a Class. Each Class.New call produces a Component: the host-facing
// object that receives the host's lifecycle calls and drives the reactive
// engine, the slot projector and the element post-processor.
//
// # Lifecycle
//
// A host calls, in order:
//
//	c := class.New(props)          // created hook
//	tree := c.Render()
//	// commit tree, invoking node refs
//	c.ComponentDidMount()          // leftover NextTick callbacks, mounted hook
//
//	c.ComponentWillReceiveProps(next) // watchers
//	c.ComponentWillUpdate(next)       // updated hook
//	c.SetProps(next)
//	tree = c.Render()
//	// commit
//	c.ComponentDidUpdate()            // NextTick callbacks
//
//	c.ComponentWillUnmount()          // beforeDestroy hook
//
// Panics raised by user code propagate to the host unchanged.
//
// # Observability
//
// Components log lifecycle transitions at debug level, open an OpenTelemetry
// span per phase and, when WithMetrics is given, update Prometheus counters.
package bridge
