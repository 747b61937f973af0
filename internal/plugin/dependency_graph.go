package plugin

// DependencyGraph tracks which plugins must run before which. Ties in the
// ordering are broken by insertion order so the stylesheet follows the
// order plugins were registered in.
type DependencyGraph struct {
	order    []string
	index    map[string]int
	incoming map[string]map[string]struct{}
	outgoing map[string]map[string]struct{}
}

// NewDependencyGraph creates an empty dependency graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		index:    make(map[string]int),
		incoming: make(map[string]map[string]struct{}),
		outgoing: make(map[string]map[string]struct{}),
	}
}

// AddNode ensures the plugin exists within the graph.
func (g *DependencyGraph) AddNode(name string) {
	if _, exists := g.index[name]; exists {
		return
	}
	g.index[name] = len(g.order)
	g.order = append(g.order, name)
	g.incoming[name] = make(map[string]struct{})
	g.outgoing[name] = make(map[string]struct{})
}

// AddEdge records that dependent must run after dependency.
func (g *DependencyGraph) AddEdge(dependent, dependency string) {
	g.AddNode(dependent)
	g.AddNode(dependency)

	g.outgoing[dependent][dependency] = struct{}{}
	g.incoming[dependency][dependent] = struct{}{}
}

// HasNode reports if the node exists in the graph.
func (g *DependencyGraph) HasNode(name string) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[name]
	return ok
}

// DetectCycle returns one cycle if present or nil when the graph is acyclic.
func (g *DependencyGraph) DetectCycle() []string {
	visited := make(map[string]bool, len(g.order))
	onStack := make(map[string]bool, len(g.order))
	var path, cycle []string

	var dfs func(node string) bool
	dfs = func(node string) bool {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, dep := range g.sorted(g.outgoing[node]) {
			if onStack[dep] {
				idx := len(path) - 1
				for idx >= 0 && path[idx] != dep {
					idx--
				}
				cycle = append([]string{}, path[idx:]...)
				return true
			}
			if !visited[dep] && dfs(dep) {
				return true
			}
		}

		onStack[node] = false
		path = path[:len(path)-1]
		return false
	}

	for _, node := range g.order {
		if !visited[node] && dfs(node) {
			break
		}
	}
	return cycle
}

// TopologicalSort returns nodes with dependencies first.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	remaining := make(map[string]int, len(g.order))
	for _, node := range g.order {
		remaining[node] = len(g.outgoing[node])
	}

	result := make([]string, 0, len(g.order))
	done := make(map[string]bool, len(g.order))
	for len(result) < len(g.order) {
		next := ""
		for _, node := range g.order {
			if !done[node] && remaining[node] == 0 {
				next = node
				break
			}
		}
		if next == "" {
			return nil, ErrCircularDependency{Cycle: g.DetectCycle()}
		}

		done[next] = true
		result = append(result, next)
		for dependent := range g.incoming[next] {
			remaining[dependent]--
		}
	}

	return result, nil
}

func (g *DependencyGraph) sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for _, node := range g.order {
		if _, ok := set[node]; ok {
			out = append(out, node)
		}
	}
	return out
}
