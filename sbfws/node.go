package sbfws

import (
	"github.com/wbfs/search/model"
)

// SearchNode is the node type used by SBFWSEngine (spec.md §3). It carries
// everything SimulationNode does (state, action, parent, g, R, gen_order)
// plus the #g/#r novelty bookkeeping SBFWS needs.
type SearchNode[S any] struct {
	State    S
	Action   model.ActionID
	Parent   *SearchNode[S]
	G        int
	R        float64
	GenOrder uint32

	// Unachieved is #g: the number of currently-unsatisfied subgoals.
	Unachieved int

	// WG and WGR are the width classifications against the #g-partitioned
	// and (#g,#r)-partitioned novelty tables, respectively. Both start at
	// model.WidthUnknown in nodes built by the engine. Heuristic's level-2
	// Evaluate* calls leave a One unchanged; its other Evaluate* calls
	// overwrite the tag with their own result, and GetHashR under
	// RelevantSetNone sets WGR to GTOne.
	WG  model.WidthTag
	WGR model.WidthTag

	// Processed is set once this node has been through process_node
	// (expanded and added to the closed list).
	Processed bool

	// Helper is the (possibly shared, non-owning in spirit though Go GC
	// makes the sharing automatic) AtomsetHelper backing RelevantAtoms.
	Helper *AtomsetHelper

	// RelevantAtoms is this node's cached #r tracker; nil until computeR
	// (the RelevantSetSimulation path of GetHashR) fills it for this node or
	// for one of its descendants. It stays nil under the other strategies.
	RelevantAtoms *RelevantAtomSet

	// HashR is the cached numeric summary of #r, however the configured
	// RelevantSetStrategy computed it (simulation num_reached, L0, or the
	// L2-norm geodesic index).
	HashR uint32
}

// HasParent reports whether this node has a parent (i.e. is not the root).
func (n *SearchNode[S]) HasParent() bool { return n.Parent != nil }

// DecreasesUnachievedSubgoals reports whether this node strictly decreases
// #g relative to its parent, or has no parent at all — spec.md §3's
// decreases_unachieved_subgoals().
func (n *SearchNode[S]) DecreasesUnachievedSubgoals() bool {
	return n.Parent == nil || n.Unachieved < n.Parent.Unachieved
}

func newRootNode[S any](state S, genOrder uint32) *SearchNode[S] {
	return &SearchNode[S]{
		State:    state,
		Action:   model.NoAction,
		G:        0,
		GenOrder: genOrder,
		WG:       model.WidthUnknown,
		WGR:      model.WidthUnknown,
	}
}

func newChildNode[S any](state S, action model.ActionID, parent *SearchNode[S], genOrder uint32) *SearchNode[S] {
	return &SearchNode[S]{
		State:    state,
		Action:   action,
		Parent:   parent,
		G:        parent.G + 1,
		GenOrder: genOrder,
		WG:       model.WidthUnknown,
		WGR:      model.WidthUnknown,
	}
}
