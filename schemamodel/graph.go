package schemamodel

import "strings"

// Direction tags which end of an edge declared the foreign key.
type Direction string

const (
	// Forward marks the hop from the dependent table to the referenced table.
	Forward Direction = "forward"
	// Reverse marks the hop from the referenced table back to the dependent table.
	Reverse Direction = "reverse"
)

// Edge is one foreign-key-derived relationship between two tables. The graph
// is undirected for reachability; the original FK direction is kept as
// metadata (From is always the dependent table).
type Edge struct {
	From       string // dependent table
	FromColumn string // foreign key column on From
	To         string // referenced table
	ToColumn   string // referenced column on To
}

// halfEdge is an edge as seen from one endpoint.
type halfEdge struct {
	peer       string
	column     string // column on this endpoint
	peerColumn string // column on the peer
	direction  Direction
}

// JoinHop is one step of a join path between two tables.
type JoinHop struct {
	FromTable  string
	FromColumn string
	ToTable    string
	ToColumn   string
}

// RelationshipGraph is an undirected multigraph over table names whose edges
// are foreign key declarations. Built once per schema, read-only afterwards.
type RelationshipGraph struct {
	adjacency map[string][]halfEdge // keyed by lower-cased table name
	names     map[string]string     // lower-cased name -> canonical name
	edges     []Edge
}

func newRelationshipGraph() *RelationshipGraph {
	return &RelationshipGraph{
		adjacency: make(map[string][]halfEdge),
		names:     make(map[string]string),
	}
}

// addForeignKey records one accepted FK declaration as a single undirected
// edge, reachable from both endpoints.
func (g *RelationshipGraph) addForeignKey(from, fromColumn, to, toColumn string) {
	fromKey := strings.ToLower(from)
	toKey := strings.ToLower(to)

	g.names[fromKey] = from
	g.names[toKey] = to

	g.adjacency[fromKey] = append(g.adjacency[fromKey], halfEdge{
		peer:       toKey,
		column:     fromColumn,
		peerColumn: toColumn,
		direction:  Forward,
	})
	g.adjacency[toKey] = append(g.adjacency[toKey], halfEdge{
		peer:       fromKey,
		column:     toColumn,
		peerColumn: fromColumn,
		direction:  Reverse,
	})

	g.edges = append(g.edges, Edge{
		From:       from,
		FromColumn: fromColumn,
		To:         to,
		ToColumn:   toColumn,
	})
}

// Edges returns all accepted foreign key edges in insertion order.
func (g *RelationshipGraph) Edges() []Edge {
	return g.edges
}

// EdgeCount returns the number of accepted foreign key declarations.
func (g *RelationshipGraph) EdgeCount() int {
	return len(g.edges)
}

// HasNode reports whether a table participates in at least one foreign key
// relationship (case-insensitive).
func (g *RelationshipGraph) HasNode(table string) bool {
	_, ok := g.adjacency[strings.ToLower(table)]
	return ok
}

// shortestPath returns the node keys of a shortest path between two nodes
// found by breadth-first search, or nil when no path exists. Both keys must
// be lower-cased.
func (g *RelationshipGraph) shortestPath(start, goal string) []string {
	if start == goal {
		return []string{start}
	}

	if _, ok := g.adjacency[start]; !ok {
		return nil
	}

	if _, ok := g.adjacency[goal]; !ok {
		return nil
	}

	visited := map[string]bool{start: true}
	parent := map[string]string{}
	queue := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, edge := range g.adjacency[node] {
			if visited[edge.peer] {
				continue
			}

			visited[edge.peer] = true
			parent[edge.peer] = node

			if edge.peer == goal {
				return rebuildPath(parent, start, goal)
			}

			queue = append(queue, edge.peer)
		}
	}

	return nil
}

func rebuildPath(parent map[string]string, start, goal string) []string {
	path := []string{goal}
	for node := goal; node != start; node = parent[node] {
		path = append(path, parent[node])
	}

	// reverse into start -> goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// hopBetween returns the first recorded edge from one node to a neighbor,
// seen from the first node's side.
func (g *RelationshipGraph) hopBetween(from, to string) (halfEdge, bool) {
	for _, edge := range g.adjacency[from] {
		if edge.peer == to {
			return edge, true
		}
	}

	return halfEdge{}, false
}

// JoinPath finds the shortest sequence of FK hops connecting two tables.
//
// Identical tables yield an empty, non-nil path. A table without any FK
// relationship, or two tables in disconnected components, yield (nil, false).
// Matching is case-insensitive.
func (m *Model) JoinPath(table1, table2 string) ([]JoinHop, bool) {
	t1, ok := m.Table(table1)
	if !ok {
		return nil, false
	}

	t2, ok := m.Table(table2)
	if !ok {
		return nil, false
	}

	if strings.EqualFold(t1.Name, t2.Name) {
		return []JoinHop{}, true
	}

	nodes := m.graph.shortestPath(strings.ToLower(t1.Name), strings.ToLower(t2.Name))
	if nodes == nil {
		return nil, false
	}

	hops := make([]JoinHop, 0, len(nodes)-1)

	for i := 0; i < len(nodes)-1; i++ {
		edge, ok := m.graph.hopBetween(nodes[i], nodes[i+1])
		if !ok {
			return nil, false
		}

		hops = append(hops, JoinHop{
			FromTable:  m.graph.names[nodes[i]],
			FromColumn: edge.column,
			ToTable:    m.graph.names[nodes[i+1]],
			ToColumn:   edge.peerColumn,
		})
	}

	return hops, true
}
