package iw

import (
	"github.com/wbfs/search/model"
	"github.com/wbfs/search/novelty"
)

// Node is the SimulationNode of spec.md §3: the node type used inside IW
// simulations. G == 0 iff Parent == nil; GenOrder is strictly positive and
// unique within one Engine run.
type Node[S any] struct {
	State    S
	Action   model.ActionID
	Parent   *Node[S]
	G        int
	W        int // novelty.Infinite until evaluated
	R        float64
	GenOrder uint32
}

// HasParent reports whether this node has a parent (i.e. is not the root).
func (n *Node[S]) HasParent() bool { return n.Parent != nil }

func newRoot[S any](state S, genOrder uint32) *Node[S] {
	return &Node[S]{State: state, Action: model.NoAction, G: 0, W: novelty.Infinite, GenOrder: genOrder}
}

func newChild[S any](state S, action model.ActionID, parent *Node[S], genOrder uint32) *Node[S] {
	return &Node[S]{
		State:    state,
		Action:   action,
		Parent:   parent,
		G:        parent.G + 1,
		W:        novelty.Infinite,
		GenOrder: genOrder,
	}
}
