package recipe

import (
	"fmt"
	"sort"

	"tataru/core/models"
)

// FindCycles reports recipe cycles among the given items. Each cycle is returned
// once, as the path of item ids starting at its lowest id.
func FindCycles(items []models.Item) [][]int {
	edges := make(map[int][]int, len(items))
	for _, it := range items {
		if !it.Craftable() {
			continue
		}
		for _, ing := range it.Recipe.Ingredients {
			edges[it.ID] = append(edges[it.ID], ing.ItemID)
		}
	}

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[int]int, len(edges))
	seen := map[string]bool{}
	var cycles [][]int
	var stack []int

	var visit func(id int)
	visit = func(id int) {
		state[id] = active
		stack = append(stack, id)
		for _, next := range edges[id] {
			switch state[next] {
			case unvisited:
				visit(next)
			case active:
				start := len(stack) - 1
				for stack[start] != next {
					start--
				}
				cycle := rotate(append([]int(nil), stack[start:]...))
				if key := cycleKey(cycle); !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = done
	}

	ids := make([]int, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if state[id] == unvisited {
			visit(id)
		}
	}
	return cycles
}

// rotate starts the cycle at its lowest id.
func rotate(cycle []int) []int {
	low := 0
	for i, id := range cycle {
		if id < cycle[low] {
			low = i
		}
	}
	return append(cycle[low:], cycle[:low]...)
}

func cycleKey(cycle []int) string {
	return fmt.Sprint(cycle)
}
