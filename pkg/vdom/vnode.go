package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Host component class instantiated by the host
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Reserved prop names shared by the adapter and the host.
const (
	// ChildrenProp carries child content into a component's props.
	ChildrenProp = "children"

	// ParentProp carries the logical parent instance into a child component.
	ParentProp = "parentVueComponent"

	// ClassNameProp is the host's class attribute.
	ClassNameProp = "className"

	// StyleProp is the host's style mapping.
	StyleProp = "style"

	// AdditionalClassNameProp is appended to a component root's className.
	AdditionalClassNameProp = "additionalClassName"

	// AdditionalStylesProp is merged over a component root's style.
	AdditionalStylesProp = "additionalStyles"

	// RefTempProp holds a ref callback that must run before the adapter's own.
	RefTempProp = "refTemp"

	// KeyProp is the reconciliation key.
	KeyProp = "key"

	// IDProp is the element id.
	IDProp = "id"
)

// VNode is a render tree node.
type VNode struct {
	Kind     VKind         // Node type
	Tag      string        // Element tag name (e.g., "div")
	Type     ComponentType // For KindComponent
	Props    Props         // Attributes and event handlers
	Children []*VNode      // Child nodes
	Key      string        // Reconciliation key
	Text     string        // For KindText

	// LogicalTag identifies the adapter component that produced this node,
	// independent of Tag or Type.
	LogicalTag string

	// Ref is called by the host with the committed handle.
	Ref func(handle any)
}

// Props holds attributes and event handlers.
type Props map[string]any

// Clone returns a shallow copy of the props.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether the key is present.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the value under key if it is a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// ComponentType is a component class the host knows how to instantiate.
type ComponentType interface {
	// LogicalTag is the adapter tag the class stamps onto its output.
	LogicalTag() string
}

// IsText reports whether the node is a text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// TypeTag returns the tag derived from the node's type: the component
// type's logical tag, the element tag name, or "".
func (v *VNode) TypeTag() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindComponent:
		if v.Type != nil {
			return v.Type.LogicalTag()
		}
	case KindElement:
		return v.Tag
	}
	return ""
}

// ShallowCopy returns a copy of the node with its own Props map.
// Children are shared.
func (v *VNode) ShallowCopy() *VNode {
	if v == nil {
		return nil
	}
	cp := *v
	if v.Props != nil {
		cp.Props = v.Props.Clone()
	}
	return &cp
}
