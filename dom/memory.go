package dom

import (
	"strings"
	"sync"

	"github.com/vcrobe/nojs-toast/toast"
	"github.com/vcrobe/nojs-toast/vdom"
)

// Memory is a toast.Document over a vdom tree. Elements are found by their
// id attribute; SetText replaces the node's content and drops its children,
// like textContent does in a browser.
type Memory struct {
	mu   sync.Mutex
	root *vdom.VNode
}

var _ toast.Document = (*Memory)(nil)

// NewMemory wraps an existing tree. A nil root yields an empty document.
func NewMemory(root *vdom.VNode) *Memory {
	if root == nil {
		root = vdom.Div(nil)
	}
	return &Memory{root: root}
}

// NewMemoryFor builds a document holding the toast markup for targets.
func NewMemoryFor(targets toast.Targets) *Memory {
	return NewMemory(vdom.ToastContainer(Surfaces(targets)...))
}

// ElementByID implements toast.Document.
func (m *Memory) ElementByID(id string) (toast.Element, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.root.Find(id)
	if !ok {
		return nil, false
	}
	return &memoryElement{doc: m, node: n}, true
}

// Text returns the text of the element with the given id.
func (m *Memory) Text(id string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.root.Find(id)
	if !ok {
		return "", false
	}
	return n.Content, true
}

// Remove detaches the element with the given id, with its subtree.
// The parent gets a fresh child slice, so slices the caller still holds
// from the original tree keep their contents.
func (m *Memory) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := false
	m.root.Walk(func(n *vdom.VNode) bool {
		for i, child := range n.Children {
			if child.ID() == id {
				kept := make([]*vdom.VNode, 0, len(n.Children)-1)
				kept = append(kept, n.Children[:i]...)
				n.Children = append(kept, n.Children[i+1:]...)
				removed = true
				return false
			}
		}
		return true
	})
	return removed
}

type memoryElement struct {
	doc  *Memory
	node *vdom.VNode
}

// Attr returns the value of an attribute, or "" when unset.
func (e *memoryElement) Attr(name string) string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return e.node.Attributes[name]
}

// TextContent returns the concatenated text of the element and its descendants.
func (e *memoryElement) TextContent() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	var b strings.Builder
	e.node.Walk(func(n *vdom.VNode) bool {
		b.WriteString(n.Content)
		return true
	})
	return b.String()
}

func (e *memoryElement) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	e.node.SetContent(text)
	e.node.Children = nil
}
