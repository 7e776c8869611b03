package matcher

// node is one trie state. Nodes live in a flat arena ([]node) and refer
// to each other by index, never by pointer. Node 0 is the root; the root
// is never anyone's child and never carries patterns, so index 0 doubles
// as the "absent" sentinel in children and output slots. fail == 0 means
// the failure link points at the root, which is exactly the semantics we
// want (the root's own failure link is itself).
type node struct {
	children   [AlphabetSize]int32
	fail       int32
	output     int32 // nearest failure-ancestor with patterns, 0 if none
	patternIDs []int // patterns terminating here, in insertion order
	depth      int32
}

// insert walks pattern from the root, creating nodes as needed, and marks
// the final node terminal for id. pattern must already be normalized and
// non-empty. Multiple patterns may terminate at the same node.
func (m *Matcher) insert(pattern string, id int) {
	cur := int32(0)
	for i := 0; i < len(pattern); i++ {
		idx := charToIndex(pattern[i])
		next := m.nodes[cur].children[idx]
		if next == 0 {
			m.nodes = append(m.nodes, node{depth: m.nodes[cur].depth + 1})
			next = int32(len(m.nodes) - 1)
			m.nodes[cur].children[idx] = next
			if d := int(m.nodes[next].depth); d > m.stats.MaxDepth {
				m.stats.MaxDepth = d
			}
		}
		cur = next
	}
	m.nodes[cur].patternIDs = append(m.nodes[cur].patternIDs, id)
}
