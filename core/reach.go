// SPDX-License-Identifier: MIT

package core

import "context"

// Reachable runs a breadth-first walk along directed edges from start and
// returns the hop depth of every office reached, start included at depth 0.
//
// Errors:
//   - ErrOfficeNotFound: if start is not in the network.
//   - ctx.Err(): if ctx is cancelled during the walk.
//
// Complexity: O(V + E) plus the sort of each OutEdges call.
// Concurrency: read locks only; safe alongside other readers.
func (n *Network) Reachable(ctx context.Context, start string) (map[string]int, error) {
	if !n.HasOffice(start) {
		return nil, ErrOfficeNotFound
	}

	depth := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		out, err := n.OutEdges(id)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			if _, seen := depth[e.To]; seen {
				continue
			}
			depth[e.To] = depth[id] + 1
			queue = append(queue, e.To)
		}
	}
	return depth, nil
}
