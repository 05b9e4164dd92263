package modinfo

import (
	"errors"
	"fmt"

	graphlib "github.com/dominikbraun/graph"
)

// ComputeDepths walks the dependency graph breadth-first from the requested
// target set and returns the distance of every reachable module. A module
// reachable through multiple paths keeps its minimum depth. Targets that are
// not part of the graph are an error; dependency references to unknown
// modules are skipped, since module-info routinely names modules that were
// not built.
func ComputeDepths(modules map[string]BuildModule, targets []string) (map[string]int, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for name := range modules {
		if err := g.AddVertex(name); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return nil, err
		}
	}
	for name, module := range modules {
		for _, dep := range module.Dependencies {
			if _, ok := modules[dep]; !ok {
				continue
			}
			if err := g.AddEdge(name, dep); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	depths := make(map[string]int)
	for _, target := range targets {
		if _, ok := modules[target]; !ok {
			return nil, fmt.Errorf("unknown module %q", target)
		}
		bfsMinDepth(adjacency, target, depths)
	}

	return depths, nil
}

// bfsMinDepth lowers the recorded depth of every module reachable from start.
func bfsMinDepth(adjacency map[string]map[string]graphlib.Edge[string], start string, depths map[string]int) {
	type frontier struct {
		name  string
		depth int
	}

	queue := []frontier{{name: start}}
	visited := map[string]bool{start: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if known, ok := depths[current.name]; !ok || current.depth < known {
			depths[current.name] = current.depth
		}

		for dep := range adjacency[current.name] {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			queue = append(queue, frontier{name: dep, depth: current.depth + 1})
		}
	}
}

// ApplyDepths copies computed depths onto the module metadata and returns the
// subset of modules reachable from the target set.
func ApplyDepths(modules map[string]BuildModule, depths map[string]int) map[string]BuildModule {
	reachable := make(map[string]BuildModule, len(depths))
	for name, depth := range depths {
		module, ok := modules[name]
		if !ok {
			continue
		}
		module.Depth = depth
		reachable[name] = module
	}
	return reachable
}
