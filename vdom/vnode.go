package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string            // The HTML tag name
	Attributes map[string]string // The attributes of the node
	Children   []*VNode          // The child nodes
	Content    string            // Plain text content, rendered before children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]string, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// ID returns the node's id attribute, or "" when it has none.
func (v *VNode) ID() string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	return v.Attributes["id"]
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Walk visits v and its descendants depth-first, stopping early when fn returns false.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, child := range v.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in the tree whose id attribute equals id.
func (v *VNode) Find(id string) (*VNode, bool) {
	var found *VNode
	v.Walk(func(n *VNode) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]string) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
