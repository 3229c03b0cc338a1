// Package component holds the options-style component model: definitions,
// the per-mount Instance, the reactive property engine and the
// pending-callback queue.
//
// A Definition is never modified. Resolve folds a mixin, the definition's
// methods and constructor args into an immutable Resolved snapshot, and
// Assemble creates one Instance per mount from that snapshot:
//
//	def := &component.Definition{
//	    Name:  "counter",
//	    Props: map[string]component.Prop{"start": {Default: 0}},
//	    Data:  func() map[string]any { return map[string]any{"clicks": 0} },
//	    Computed: []component.Computed{
//	        {Name: "total", Get: func(vm *component.Instance) any {
//	            return vm.Int("start") + vm.Int("clicks")
//	        }},
//	    },
//	    Methods: map[string]component.Method{
//	        "increment": func(vm *component.Instance, _ ...any) any {
//	            vm.Set("clicks", vm.Int("clicks")+1)
//	            return nil
//	        },
//	    },
//	}
//
// Instances are not safe for concurrent use; the host drives them from a
// single goroutine.
package component
