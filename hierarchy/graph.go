// Package hierarchy computes world poses over a parent/child graph.
//
// Every node owns a local transform. Propagate walks the graph from the
// roots down and derives the world transform of every node from its own
// local transform and the world transform of its parent. A Graph is not
// safe for concurrent use.
package hierarchy

import (
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/xform/glm"
	"github.com/oliverbestmann/xform/transform"
)

var ErrUnknownNode = errors.New("unknown node")
var ErrCycle = errors.New("node would become its own ancestor")

// Node identifies a node in a Graph.
type Node int

// Nil represents an invalid Node. Passed as parent it means "no parent".
const Nil Node = 0

type node[T glm.Float] struct {
	parent Node
	sub    Node
	next   Node
	prev   Node
	live   bool
	local  transform.Transform[T]
	global transform.GlobalTransform[T]
}

type Options struct {
	// number of world matrices kept by Matrix. Defaults to 1024.
	MatrixCacheSize int
}

// Graph is a forest of nodes. The node at index 0 is never handed out,
// its descendants are the roots.
type Graph[T glm.Float] struct {
	nodes []node[T]
	free  []Node
	count int
	stack []Node

	matrices *lru.Cache[transform.GlobalTransform[T], glm.Mat4[T]]
}

func New[T glm.Float](opts Options) *Graph[T] {
	if opts.MatrixCacheSize <= 0 {
		opts.MatrixCacheSize = 1024
	}

	// only fails for a non positive size
	matrices, _ := lru.New[transform.GlobalTransform[T], glm.Mat4[T]](opts.MatrixCacheSize)

	return &Graph[T]{
		nodes:    make([]node[T], 1),
		matrices: matrices,
	}
}

func (g *Graph[T]) get(n Node) (*node[T], error) {
	if n <= Nil || int(n) >= len(g.nodes) || !g.nodes[n].live {
		return nil, fmt.Errorf("node %d: %w", n, ErrUnknownNode)
	}

	return &g.nodes[n], nil
}

// parentOf validates n as a parent, accepting Nil.
func (g *Graph[T]) parentOf(n Node) (*node[T], error) {
	if n == Nil {
		return &g.nodes[0], nil
	}

	return g.get(n)
}

// Insert adds a node with the given local transform as a child of parent.
// Its world transform is derived from the current world transform of parent
// right away.
func (g *Graph[T]) Insert(local transform.Transform[T], parent Node) (Node, error) {
	p, err := g.parentOf(parent)
	if err != nil {
		return Nil, fmt.Errorf("insert: %w", err)
	}

	global := transform.GlobalFrom(local)
	if parent != Nil {
		global = p.global.Mul(local)
	}

	var n Node
	if len(g.free) > 0 {
		n = g.free[len(g.free)-1]
		g.free = g.free[:len(g.free)-1]
	} else {
		n = Node(len(g.nodes))
		g.nodes = append(g.nodes, node[T]{})
	}

	g.nodes[n] = node[T]{live: true, local: local, global: global}
	g.link(n, parent)
	g.count += 1

	return n, nil
}

// Remove removes n and all of its descendants. Their handles are reused by
// later calls to Insert.
func (g *Graph[T]) Remove(n Node) error {
	if _, err := g.get(n); err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	g.unlink(n)

	stack := append(g.stack[:0], n)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for sub := g.nodes[curr].sub; sub != Nil; sub = g.nodes[sub].next {
			stack = append(stack, sub)
		}

		g.nodes[curr] = node[T]{}
		g.free = append(g.free, curr)
		g.count -= 1
	}

	g.stack = stack

	return nil
}

// Reparent moves n and its descendants below parent. Making a node a
// descendant of itself fails with ErrCycle. World transforms are updated by
// the next call to Propagate.
func (g *Graph[T]) Reparent(n Node, parent Node) error {
	if _, err := g.get(n); err != nil {
		return fmt.Errorf("reparent: %w", err)
	}

	if _, err := g.parentOf(parent); err != nil {
		return fmt.Errorf("reparent to %d: %w", parent, err)
	}

	for p := parent; p != Nil; p = g.nodes[p].parent {
		if p == n {
			return fmt.Errorf("reparent %d to %d: %w", n, parent, ErrCycle)
		}
	}

	g.unlink(n)
	g.link(n, parent)

	return nil
}

func (g *Graph[T]) link(n Node, parent Node) {
	sub := g.nodes[parent].sub

	g.nodes[n].parent = parent
	g.nodes[n].prev = Nil
	g.nodes[n].next = sub

	if sub != Nil {
		g.nodes[sub].prev = n
	}

	g.nodes[parent].sub = n
}

func (g *Graph[T]) unlink(n Node) {
	nd := &g.nodes[n]

	if nd.prev != Nil {
		g.nodes[nd.prev].next = nd.next
	} else {
		g.nodes[nd.parent].sub = nd.next
	}

	if nd.next != Nil {
		g.nodes[nd.next].prev = nd.prev
	}

	nd.parent, nd.prev, nd.next = Nil, Nil, Nil
}

// SetLocal replaces the local transform of n. World transforms are
// updated by the next call to Propagate.
func (g *Graph[T]) SetLocal(n Node, local transform.Transform[T]) error {
	nd, err := g.get(n)
	if err != nil {
		return fmt.Errorf("set local: %w", err)
	}

	nd.local = local
	return nil
}

func (g *Graph[T]) Local(n Node) (transform.Transform[T], bool) {
	nd, err := g.get(n)
	if err != nil {
		return transform.Transform[T]{}, false
	}

	return nd.local, true
}

// Global returns the world transform of n as of the last Propagate.
func (g *Graph[T]) Global(n Node) (transform.GlobalTransform[T], bool) {
	nd, err := g.get(n)
	if err != nil {
		return transform.GlobalTransform[T]{}, false
	}

	return nd.global, true
}

// Matrix returns the world matrix of n as of the last Propagate.
func (g *Graph[T]) Matrix(n Node) (glm.Mat4[T], bool) {
	global, ok := g.Global(n)
	if !ok {
		return glm.Mat4[T]{}, false
	}

	// NaN never equals itself, such a key could only ever miss
	if hasNaN(global) {
		return global.ComputeMatrix(), true
	}

	if matrix, ok := g.matrices.Get(global); ok {
		return matrix, true
	}

	matrix := global.ComputeMatrix()
	g.matrices.Add(global, matrix)

	return matrix, true
}

func hasNaN[T glm.Float](global transform.GlobalTransform[T]) bool {
	rotation := global.Rotation
	return global.Translation.IsNaN() || global.Scale.IsNaN() || rotation.V.IsNaN() || rotation.S != rotation.S
}

// Parent returns the parent of n, Nil for roots.
func (g *Graph[T]) Parent(n Node) (Node, bool) {
	nd, err := g.get(n)
	if err != nil {
		return Nil, false
	}

	return nd.parent, true
}

// Children returns the immediate descendants of n, the most recently
// attached child first.
func (g *Graph[T]) Children(n Node) []Node {
	p, err := g.parentOf(n)
	if err != nil {
		return nil
	}

	var children []Node
	for sub := p.sub; sub != Nil; sub = g.nodes[sub].next {
		children = append(children, sub)
	}

	return children
}

// Roots returns all nodes without a parent.
func (g *Graph[T]) Roots() []Node {
	return g.Children(Nil)
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int {
	return g.count
}

// Propagate recomputes the world transform of every node. A node is always
// visited after its parent. It returns the number of visited nodes.
func (g *Graph[T]) Propagate() int {
	var visited int

	stack := g.stack[:0]
	for root := g.nodes[0].sub; root != Nil; root = g.nodes[root].next {
		stack = append(stack, root)
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &g.nodes[n]
		if nd.parent == Nil {
			nd.global = transform.GlobalFrom(nd.local)
		} else {
			nd.global = g.nodes[nd.parent].global.Mul(nd.local)
		}

		for sub := nd.sub; sub != Nil; sub = g.nodes[sub].next {
			stack = append(stack, sub)
		}

		visited += 1
	}

	g.stack = stack

	slog.Debug("Propagated transforms", slog.Int("nodes", visited))

	return visited
}
