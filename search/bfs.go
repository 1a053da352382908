package search

// bfs runs breadth-first search from start.
//
// Each queue entry carries its full path, so success needs no parent-map
// reconstruction. A location is marked visited and explored when it is
// enqueued, so explored lists the BFS discovery order. Returns a nil path
// when the queue empties without reaching the goal.
func (w *walker) bfs(start string) ([]string, error) {
	queue := [][]string{{start}}
	visited := map[string]bool{start: true}
	if err := w.explore(start); err != nil {
		return nil, err
	}

	for len(queue) > 0 {
		if err := w.tick(); err != nil {
			return nil, err
		}

		path := queue[0]
		queue = queue[1:]
		node := path[len(path)-1]
		if node == w.goal {
			return path, nil
		}

		nbs, err := w.neighbors(node)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			if visited[nb.ID] || w.blocked.Contains(nb.ID) {
				continue
			}
			visited[nb.ID] = true
			if err = w.explore(nb.ID); err != nil {
				return nil, err
			}
			queue = append(queue, extend(path, nb.ID))
		}
	}

	return nil, nil
}
