package skipset

// node holds one element and its per-level forward links. A node's level is
// fixed at creation: len(forward) never changes while the node is linked.
// The head sentinel is the only node sized to the configured maximum level
// and holds no element.
type node[T any] struct {
	value   T
	forward []*node[T]
}
