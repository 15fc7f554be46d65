package theme

import (
	"slices"
	"strings"
)

// Node is an in-memory element holding an ordered class list.
type Node struct {
	ID      string
	classes []string
}

// NewNode makes a node with the given id and initial classes.
func NewNode(id string, classes ...string) *Node {
	n := &Node{ID: id}
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// AddClass adds the class if not present yet.
func (n *Node) AddClass(name string) {
	if name == "" || n.HasClass(name) {
		return
	}
	n.classes = append(n.classes, name)
}

// RemoveClass removes the class, no-op if absent.
func (n *Node) RemoveClass(name string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == name })
}

// ToggleClass removes the class if present, adds it otherwise.
func (n *Node) ToggleClass(name string) bool {
	if n.HasClass(name) {
		n.RemoveClass(name)
		return false
	}
	n.AddClass(name)
	return n.HasClass(name)
}

// HasClass reports whether the class is present.
func (n *Node) HasClass(name string) bool { return slices.Contains(n.classes, name) }

// Classes returns a copy of the class list in insertion order.
func (n *Node) Classes() []string { return slices.Clone(n.classes) }

// ClassAttr returns the class list formatted for a class attribute.
func (n *Node) ClassAttr() string { return strings.Join(n.classes, " ") }

// Page is an in-memory document with a body and elements addressed by id.
// The web server renders from it and tests inspect it.
type Page struct {
	body  *Node
	nodes map[string]*Node
}

// NewPage makes a page with an empty body and the given elements.
func NewPage(nodes ...*Node) *Page {
	p := &Page{body: NewNode("body"), nodes: make(map[string]*Node, len(nodes))}
	for _, n := range nodes {
		p.Add(n)
	}
	return p
}

// Add registers the node under its id, replacing any previous one.
func (p *Page) Add(n *Node) { p.nodes[n.ID] = n }

// Remove drops the node with the id.
func (p *Page) Remove(id string) { delete(p.nodes, id) }

// BodyNode returns the body node.
func (p *Page) BodyNode() *Node { return p.body }

// Node returns the node with the id or nil.
func (p *Page) Node(id string) *Node { return p.nodes[id] }

// Body implements Document.
func (p *Page) Body() (Element, bool) {
	if p.body == nil {
		return nil, false
	}
	return p.body, true
}

// ElementByID implements Document.
func (p *Page) ElementByID(id string) (Element, bool) {
	n, ok := p.nodes[id]
	if !ok {
		return nil, false
	}
	return n, true
}
