package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Node is one element of the retained view tree.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	Markup   string // opaque vector markup, rendered by the host
	Children []*Node

	parent     *Node
	onActivate func()
}

// El creates an element with the given classes.
func El(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: append([]string(nil), classes...)}
}

func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

func (n *Node) AddClass(classes ...string) *Node {
	for _, c := range classes {
		if !n.HasClass(c) {
			n.Classes = append(n.Classes, c)
		}
	}
	return n
}

func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Append attaches children, detaching them from any previous parent.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Remove()
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Remove detaches n from its parent. It reports whether n was attached.
func (n *Node) Remove() bool {
	p := n.parent
	if p == nil {
		return false
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
	return true
}

// Attached reports whether n currently has a parent.
func (n *Node) Attached() bool {
	return n.parent != nil
}

// OnActivate binds the node's primary action.
func (n *Node) OnActivate(fn func()) *Node {
	n.onActivate = fn
	return n
}

// Activate runs the bound action, if any.
func (n *Node) Activate() bool {
	if n.onActivate == nil {
		return false
	}
	n.onActivate()
	return true
}

// Find returns the first descendant carrying class, depth first.
func (n *Node) Find(class string) *Node {
	for _, c := range n.Children {
		if c.HasClass(class) {
			return c
		}
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant carrying class, depth first.
func (n *Node) FindAll(class string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if c != n && c.HasClass(class) {
			out = append(out, c)
		}
	})
	return out
}

// Actions returns the descendants with a bound action.
func (n *Node) Actions() []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if c.onActivate != nil {
			out = append(out, c)
		}
	})
	return out
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) { b.WriteString(c.Text) })
	return b.String()
}

// Dump writes a deterministic outline of the tree rooted at n.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func (n *Node) String() string {
	var b strings.Builder
	_ = Dump(&b, n)
	return b.String()
}

func dump(w io.Writer, n *Node, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	if id := n.Attr("id"); id != "" {
		b.WriteString("#" + id)
	}
	for _, c := range n.Classes {
		b.WriteString("." + c)
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		if k != "id" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "[%s=%s]", k, n.Attrs[k])
	}
	if n.Text != "" {
		fmt.Fprintf(&b, " %q", n.Text)
	}
	if n.onActivate != nil {
		b.WriteString(" (on:activate)")
	}
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
