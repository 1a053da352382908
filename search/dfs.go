package search

// dfs runs depth-first search from start.
//
// Visited marking is lazy: a location is marked when popped, not when
// pushed, and the start is not pre-marked. A location may therefore sit on
// the stack several times; stale copies are discarded at pop. Neighbors are
// pushed in reverse declared order so the first-declared one is popped first.
func (w *walker) dfs(start string) ([]string, error) {
	stack := [][]string{{start}}
	visited := make(map[string]bool, w.graph.LocationCount())

	for len(stack) > 0 {
		if err := w.tick(); err != nil {
			return nil, err
		}

		top := len(stack) - 1
		path := stack[top]
		stack = stack[:top]
		node := path[len(path)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		if err := w.explore(node); err != nil {
			return nil, err
		}
		if node == w.goal {
			return path, nil
		}

		nbs, err := w.neighbors(node)
		if err != nil {
			return nil, err
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if w.blocked.Contains(nbs[i].ID) {
				continue
			}
			stack = append(stack, extend(path, nbs[i].ID))
		}
	}

	return nil, nil
}
