package hashlife

import (
	"fmt"

	"github.com/rs/zerolog"
)

// cacheLogMilestone controls how often NodeStore emits a debug-level
// growth log line, to avoid logging on every single intern miss.
const cacheLogMilestone = 1 << 16

// childKey is the hash-consing key: four child identities. Because
// Node is always handed out as a pointer and identical children are
// guaranteed to be the same *Node (structural sharing), plain pointer
// comparison is both correct and cheap - no deep hashing required.
type childKey [4]*Node

// NodeStore is the process-wide (or, here, per-store) canonicalization
// index mapping (nw, ne, sw, se) to a unique Node, plus an empty-node
// cache keyed by level. It is an explicit value rather than a
// package-level global, so tests can construct a fresh store instead
// of leaking state between runs.
//
// A NodeStore is not safe for concurrent mutation; see the
// concurrency notes in SPEC_FULL.md.
type NodeStore struct {
	allNodes map[childKey]*Node
	allEmpty map[uint]*Node

	dead  *Node
	alive *Node

	hits   uint64
	misses uint64

	logger zerolog.Logger
}

// NewNodeStore returns an empty store with logging disabled.
func NewNodeStore() *NodeStore {
	return NewNodeStoreWithLogger(zerolog.Nop())
}

// NewNodeStoreWithLogger returns an empty store that reports cache
// growth and reset events through logger.
func NewNodeStoreWithLogger(logger zerolog.Logger) *NodeStore {
	ds := &NodeStore{
		allNodes: make(map[childKey]*Node),
		allEmpty: make(map[uint]*Node),
		dead:     &Node{Level: 0, alive: false},
		alive:    &Node{Level: 0, alive: true},
		logger:   logger,
	}
	ds.allEmpty[0] = ds.dead
	return ds
}

// Leaf returns the singleton DEAD or ALIVE sentinel node for alive.
func (ds *NodeStore) Leaf(alive bool) *Node {
	if alive {
		return ds.alive
	}
	return ds.dead
}

// Intern returns the unique Node for the given four children,
// allocating one on first sight. If a Node with those four child
// identities already exists, it is returned unchanged (cache hit);
// Intern never allocates two Nodes for the same child tuple.
func (ds *NodeStore) Intern(nw, ne, sw, se *Node) (*Node, error) {
	if nw.Level != ne.Level || nw.Level != sw.Level || nw.Level != se.Level {
		return nil, fmt.Errorf("intern: levels nw=%d ne=%d sw=%d se=%d: %w",
			nw.Level, ne.Level, sw.Level, se.Level, ErrInconsistentLevels)
	}
	key := childKey{nw, ne, sw, se}
	if n, ok := ds.allNodes[key]; ok {
		ds.hits++
		return n, nil
	}
	ds.misses++
	n := &Node{Level: nw.Level + 1, NW: nw, NE: ne, SW: sw, SE: se}
	ds.allNodes[key] = n
	if ds.misses%cacheLogMilestone == 0 {
		ds.logger.Debug().
			Uint64("hits", ds.hits).
			Uint64("misses", ds.misses).
			Int("size", len(ds.allNodes)).
			Msg("node store growth milestone")
	}
	return n, nil
}

// mustIntern is Intern without the already-validated level-mismatch
// path, used internally where the four children are known by
// construction to share a level (e.g. Empty's four identical copies
// of the same subtree).
func (ds *NodeStore) mustIntern(nw, ne, sw, se *Node) *Node {
	n, err := ds.Intern(nw, ne, sw, se)
	if err != nil {
		panic(err)
	}
	return n
}

// Empty returns the unique all-DEAD node at the given level.
func (ds *NodeStore) Empty(level uint) *Node {
	if level == 0 {
		return ds.dead
	}
	if n, ok := ds.allEmpty[level]; ok {
		return n
	}
	child := ds.Empty(level - 1)
	n := ds.mustIntern(child, child, child, child)
	ds.allEmpty[level] = n
	return n
}

// Reset clears the intern cache and the empty-node cache. Previously
// handed-out Node references remain valid values, but they are no
// longer interned: new constructions will not deduplicate against
// them. Intended for test isolation and for starting a fresh
// simulation session.
func (ds *NodeStore) Reset() {
	ds.logger.Info().
		Int("size", len(ds.allNodes)).
		Uint64("hits", ds.hits).
		Uint64("misses", ds.misses).
		Msg("node store reset")
	ds.allNodes = make(map[childKey]*Node)
	ds.allEmpty = make(map[uint]*Node)
	ds.allEmpty[0] = ds.dead
	ds.hits = 0
	ds.misses = 0
}

// Stats reports the current cache hit/miss counters and table size.
func (ds *NodeStore) Stats() (hits, misses uint64, size int) {
	return ds.hits, ds.misses, len(ds.allNodes)
}
