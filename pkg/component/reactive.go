package component

import (
	"reflect"

	"github.com/vango-dev/vbridge/pkg/vdom"
)

// RecomputeComputed evaluates every computed property in declaration order
// and stores each result under its name. Nothing is cached.
func RecomputeComputed(vm *Instance) {
	for _, c := range vm.def.Computed {
		if c.Get == nil {
			continue
		}
		vm.fields.Put(c.Name, c.Get(vm))
	}
}

// DispatchWatchers commits next onto the instance, recomputes computed
// properties and then calls, in declaration order, every watcher whose prop
// differs between current and next. It returns the number of watchers fired.
func DispatchWatchers(vm *Instance, current, next vdom.Props) int {
	CopyProps(vm, next)
	RecomputeComputed(vm)

	fired := 0
	for _, w := range vm.def.Watch {
		if w.Handler == nil {
			continue
		}
		value := next[w.Prop]
		if Same(current[w.Prop], value) {
			continue
		}
		w.Handler(vm, value)
		fired++
	}
	return fired
}

// Same reports whether a and b are the same value: == for comparable
// values, identity for maps, slices, funcs, channels and pointers. Values are
// never compared deeply, except structs and arrays that cannot be compared
// with ==.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return reflect.DeepEqual(a, b)
	}
}
