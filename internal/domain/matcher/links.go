package matcher

// buildLinks computes failure and output links for every node, breadth
// first. BFS order guarantees that when a node is processed, every
// shallower node's links are already final — each failure link points
// strictly upward in depth.
func (m *Matcher) buildLinks() {
	queue := make([]int32, 0, len(m.nodes))

	// Depth-1 nodes fail to the root.
	for i := 0; i < AlphabetSize; i++ {
		if c := m.nodes[0].children[i]; c != 0 {
			queue = append(queue, c)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for i := 0; i < AlphabetSize; i++ {
			child := m.nodes[cur].children[i]
			if child == 0 {
				continue
			}
			queue = append(queue, child)

			// Follow the parent's failure chain to the deepest node
			// that can extend with symbol i.
			fail := m.nodes[cur].fail
			for fail != 0 && m.nodes[fail].children[i] == 0 {
				fail = m.nodes[fail].fail
			}
			m.nodes[child].fail = m.nodes[fail].children[i]

			// Output link skips failure ancestors that carry no
			// patterns, chaining straight to the next one that does.
			f := m.nodes[child].fail
			if len(m.nodes[f].patternIDs) > 0 {
				m.nodes[child].output = f
			} else {
				m.nodes[child].output = m.nodes[f].output
			}
		}
	}
}
