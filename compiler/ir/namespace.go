package ir

import (
	"slices"
	"strings"

	"github.com/syssam/pgc/compiler/request"
)

// Namespace is a node of the query namespace tree. The root has an empty
// name and holds the queries without namespace.
type Namespace struct {
	Name string
	// Path is the module path from the root to the node.
	Path []string
	// Children sorted by name.
	Children []*Namespace
	Methods  []*Method
}

// NewNamespace returns an empty root namespace.
func NewNamespace() *Namespace {
	return &Namespace{Path: []string{}}
}

// IsRoot reports if the namespace is the root of the tree.
func (n *Namespace) IsRoot() bool { return len(n.Path) == 0 }

// HasChildren reports if the namespace has child namespaces.
func (n *Namespace) HasChildren() bool { return len(n.Children) > 0 }

// Child returns the child with the given name, or nil.
func (n *Namespace) Child(name string) *Namespace {
	i, ok := n.search(name)
	if !ok {
		return nil
	}
	return n.Children[i]
}

// Lookup returns the node at the given dotted namespace, or nil if it does
// not exist.
func (n *Namespace) Lookup(ns string) *Namespace {
	node := n
	for _, seg := range namespacePath(ns) {
		if node = node.Child(seg); node == nil {
			return nil
		}
	}
	return node
}

// Resolve returns the node at the given dotted namespace, creating the
// missing nodes on the way.
func (n *Namespace) Resolve(ns string) *Namespace {
	node := n
	for _, seg := range namespacePath(ns) {
		node = node.child(seg)
	}
	return node
}

func (n *Namespace) child(name string) *Namespace {
	i, ok := n.search(name)
	if ok {
		return n.Children[i]
	}
	c := &Namespace{
		Name: name,
		Path: append(slices.Clip(n.Path), name),
	}
	n.Children = slices.Insert(n.Children, i, c)
	return c
}

func (n *Namespace) search(name string) (int, bool) {
	return slices.BinarySearchFunc(n.Children, name, func(c *Namespace, name string) int {
		return strings.Compare(c.Name, name)
	})
}

// UsedTypes returns the types referenced by the methods of the node,
// excluding its children.
func (n *Namespace) UsedTypes() TypeSet {
	var s TypeSet
	for _, m := range n.Methods {
		for _, t := range m.UsedTypes() {
			s = s.Add(t)
		}
	}
	return s
}

// Walk calls fn for the node and its descendants in pre-order. It stops at
// the first error.
func (n *Namespace) Walk(fn func(*Namespace) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// BuildNamespace places the method of every query in the namespace tree.
func BuildNamespace(queries []request.Query, b *MethodBuilder) *Namespace {
	root := NewNamespace()
	for _, q := range queries {
		node := root.Resolve(q.Namespace())
		node.Methods = append(node.Methods, b.Build(q))
	}
	return root
}
