package vdom

import (
	"bytes"
	"sort"

	"golang.org/x/net/html"
)

// HTML serializes the tree as HTML. Attribute order is sorted for stable output.
func HTML(n *VNode) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTMLNode(n)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	node := &html.Node{Type: html.ElementNode, Data: n.Tag}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: n.Attributes[k]})
	}

	if n.Content != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child != nil && child.Tag != "" {
			node.AppendChild(toHTMLNode(child))
		}
	}
	return node
}
