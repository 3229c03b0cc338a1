package bridge

import (
	"sort"

	"github.com/vango-dev/vbridge/pkg/slots"
)

// Description summarises a generated class for tooling.
type Description struct {
	Tag      string            `json:"tag" yaml:"tag"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Props    []string          `json:"props,omitempty" yaml:"props,omitempty"`
	Defaults map[string]any    `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Data     []string          `json:"data,omitempty" yaml:"data,omitempty"`
	Methods  []string          `json:"methods,omitempty" yaml:"methods,omitempty"`
	Computed []string          `json:"computed,omitempty" yaml:"computed,omitempty"`
	Watchers []string          `json:"watchers,omitempty" yaml:"watchers,omitempty"`
	Slots    map[string]string `json:"slots" yaml:"slots"`
	Hooks    []string          `json:"hooks,omitempty" yaml:"hooks,omitempty"`
	Render   bool              `json:"render" yaml:"render"`
}

// Describe returns the class's tag, props, methods, computed properties,
// watchers, slots and hooks. Data keys are read by calling the data factory
// once.
func (c *Class) Describe() Description {
	d := Description{
		Tag:      c.tag,
		Name:     c.def.Name,
		Methods:  c.def.MethodNames(),
		Slots:    map[string]string{slots.Default: "children"},
		Render:   c.def.Render != nil,
		Defaults: c.DefaultProps(),
	}

	for name := range c.def.Props {
		d.Props = append(d.Props, name)
	}
	sort.Strings(d.Props)

	if c.def.Data != nil {
		for key := range c.def.Data() {
			d.Data = append(d.Data, key)
		}
		sort.Strings(d.Data)
	}
	for _, comp := range c.def.Computed {
		d.Computed = append(d.Computed, comp.Name)
	}
	for _, w := range c.def.Watch {
		d.Watchers = append(d.Watchers, w.Prop)
	}
	for slot, prop := range c.opts.slots {
		d.Slots[slot] = prop
	}

	hooks := c.def.Hooks
	for _, h := range []struct {
		name string
		set  bool
	}{
		{"created", hooks.Created != nil},
		{"mounted", hooks.Mounted != nil},
		{"updated", hooks.Updated != nil},
		{"beforeDestroy", hooks.BeforeDestroy != nil},
	} {
		if h.set {
			d.Hooks = append(d.Hooks, h.name)
		}
	}
	return d
}
