package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
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
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText
}

// Props holds attributes.
type Props map[string]any

// Attr returns the attribute value for key, or nil.
func (v *VNode) Attr(key string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[key]
}

// Find returns the first node in the tree, depth first, whose id attribute
// equals id.
func (v *VNode) Find(id string) *VNode {
	if v == nil {
		return nil
	}
	if v.Kind == KindElement {
		if got, ok := v.Props["id"].(string); ok && got == id {
			return v
		}
	}
	for _, child := range v.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
