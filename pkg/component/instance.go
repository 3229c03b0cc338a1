package component

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/google/uuid"

	"github.com/vango-dev/vbridge/internal/casing"
	"github.com/vango-dev/vbridge/pkg/slots"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Carrier is the lifecycle owner of an Instance: the host-facing component
// that holds the pending-callback queue and the mounted handle.
type Carrier interface {
	// Defer queues fn until after the next commit.
	Defer(fn func())

	// Element returns the last committed handle, or nil.
	Element() any

	// Invalidate records a pending state change and requests a re-render.
	Invalidate()
}

// Instance is the live per-mount record of a component.
type Instance struct {
	uid      string
	def      *Resolved
	fields   *linkedhashmap.Map
	props    vdom.Props
	parent   *Instance
	slots    slots.Map
	carrier  Carrier
	dataKeys []string
	refs     map[string]any
}

// Assemble creates the instance for one mount. Fields start from the
// resolved mixin/args values, then the data factory's values; computed
// properties are evaluated once before returning.
func Assemble(def *Resolved, props vdom.Props, carrier Carrier) *Instance {
	if props == nil {
		props = vdom.Props{}
	}
	vm := &Instance{
		uid:     uuid.NewString(),
		def:     def,
		fields:  linkedhashmap.New(),
		props:   props,
		carrier: carrier,
		slots:   slots.Map{slots.Default: {}},
	}
	if parent, ok := props[vdom.ParentProp].(*Instance); ok {
		vm.parent = parent
	}

	for _, key := range sortedKeys(def.Fields) {
		vm.fields.Put(key, def.Fields[key])
	}
	vm.initData()

	RecomputeComputed(vm)
	return vm
}

func (vm *Instance) initData() {
	if vm.def.Data == nil {
		return
	}
	state := vm.def.Data()
	vm.dataKeys = sortedKeys(state)
	for _, key := range vm.dataKeys {
		vm.fields.Put(key, state[key])
	}
}

// CopyProps commits props onto the instance. A prop never replaces a
// same-named method; the method wins unless it is nil.
func CopyProps(vm *Instance, props vdom.Props) {
	if props == nil {
		return
	}
	vm.props = props
	for _, key := range sortedKeys(props) {
		if m := vm.def.Methods[key]; m != nil {
			continue
		}
		vm.fields.Put(key, props[key])
	}
}

// UID returns the instance's unique id.
func (vm *Instance) UID() string { return vm.uid }

// Name returns the component name.
func (vm *Instance) Name() string { return vm.def.Name }

// Definition returns the resolved definition the instance was built from.
func (vm *Instance) Definition() *Resolved { return vm.def }

// Parent returns the logical parent instance, or nil.
func (vm *Instance) Parent() *Instance { return vm.parent }

// PropsData returns the props most recently committed onto the instance.
func (vm *Instance) PropsData() vdom.Props { return vm.props }

// DataKeys returns the keys produced by the data factory, sorted.
func (vm *Instance) DataKeys() []string {
	return append([]string(nil), vm.dataKeys...)
}

// Slots returns the slot map of the current render.
func (vm *Instance) Slots() slots.Map { return vm.slots }

// SetSlots replaces the slot map.
func (vm *Instance) SetSlots(m slots.Map) { vm.slots = m }

// El returns the last committed handle of the component's root.
func (vm *Instance) El() any {
	if vm.carrier == nil {
		return nil
	}
	return vm.carrier.Element()
}

// Ref returns the handle registered under a named ref.
func (vm *Instance) Ref(name string) any {
	return vm.refs[name]
}

// SetRef records the committed handle of a named ref.
func (vm *Instance) SetRef(name string, handle any) {
	if vm.refs == nil {
		vm.refs = make(map[string]any)
	}
	vm.refs[name] = handle
}

// NextTick defers fn until the host has committed the next render.
func (vm *Instance) NextTick(fn func()) {
	if vm.carrier != nil {
		vm.carrier.Defer(fn)
	}
}

// Get returns a field value.
func (vm *Instance) Get(key string) any {
	v, _ := vm.fields.Get(key)
	return v
}

// Has reports whether the instance has a field named key.
func (vm *Instance) Has(key string) bool {
	_, ok := vm.fields.Get(key)
	return ok
}

// Set assigns a field and marks the component as having unrendered changes.
func (vm *Instance) Set(key string, value any) {
	vm.fields.Put(key, value)
	if vm.carrier != nil {
		vm.carrier.Invalidate()
	}
}

// Keys returns the field names in insertion order.
func (vm *Instance) Keys() []string {
	raw := vm.fields.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Fields returns a copy of all field values.
func (vm *Instance) Fields() map[string]any {
	out := make(map[string]any, vm.fields.Size())
	it := vm.fields.Iterator()
	for it.Next() {
		out[it.Key().(string)] = it.Value()
	}
	return out
}

// String returns a field as a string; non-strings are formatted with fmt.
func (vm *Instance) String(key string) string {
	switch v := vm.Get(key).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns a field as an int, or 0 when it is not numeric.
func (vm *Instance) Int(key string) int {
	switch v := vm.Get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// Bool returns a field as a bool.
func (vm *Instance) Bool(key string) bool {
	b, _ := vm.Get(key).(bool)
	return b
}

// ID returns the instance's id field when it is a non-empty string.
func (vm *Instance) ID() (string, bool) {
	id, ok := vm.Get(vdom.IDProp).(string)
	return id, ok && id != ""
}

// Method returns the named method.
func (vm *Instance) Method(name string) (Method, bool) {
	m, ok := vm.def.Methods[name]
	return m, ok && m != nil
}

// Call invokes the named method. ok is false when no such method exists.
func (vm *Instance) Call(name string, args ...any) (result any, ok bool) {
	m, ok := vm.Method(name)
	if !ok {
		return nil, false
	}
	return m(vm, args...), true
}

// Emit calls the on<Event> handler prop for event, if one is present.
// Colons in event are treated as dashes. It reports whether a handler ran.
func (vm *Instance) Emit(event string, args ...any) bool {
	handler, ok := vm.props[casing.EventProp(event)]
	if !ok || handler == nil {
		return false
	}
	switch fn := handler.(type) {
	case func(...any):
		fn(args...)
	case func([]any):
		fn(args)
	case func(any):
		var first any
		if len(args) > 0 {
			first = args[0]
		}
		fn(first)
	case func():
		fn()
	default:
		return false
	}
	return true
}

// Decode copies the instance fields into out, a pointer to a struct, using
// "prop" struct tags.
func (vm *Instance) Decode(out any) error {
	return DecodeProps(vm.Fields(), out)
}
