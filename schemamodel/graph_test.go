package schemamodel

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestJoinPath_DirectHop(t *testing.T) {
	model := buildTestModel(t)

	path, ok := model.JoinPath("orders", "customers")
	assert.True(t, ok)
	assert.Equal(t, []JoinHop{
		{FromTable: "orders", FromColumn: "customer_id", ToTable: "customers", ToColumn: "id"},
	}, path)
}

func TestJoinPath_ReverseHop(t *testing.T) {
	model := buildTestModel(t)

	// The graph is built bidirectionally: the referenced table can reach the
	// dependent table through the same edge.
	path, ok := model.JoinPath("customers", "orders")
	assert.True(t, ok)
	assert.Equal(t, []JoinHop{
		{FromTable: "customers", FromColumn: "id", ToTable: "orders", ToColumn: "customer_id"},
	}, path)
}

func TestJoinPath_MultiHop(t *testing.T) {
	model := buildTestModel(t)

	path, ok := model.JoinPath("customers", "products")
	assert.True(t, ok)
	assert.Equal(t, 3, len(path))
	assert.Equal(t, "customers", path[0].FromTable)
	assert.Equal(t, "products", path[2].ToTable)
}

func TestJoinPath_SameTable(t *testing.T) {
	model := buildTestModel(t)

	path, ok := model.JoinPath("orders", "ORDERS")
	assert.True(t, ok)
	assert.True(t, path != nil)
	assert.Equal(t, 0, len(path))
}

func TestJoinPath_NoPath(t *testing.T) {
	model := buildTestModel(t)

	// audit_log has no FK relationships at all
	_, ok := model.JoinPath("orders", "audit_log")
	assert.False(t, ok)

	_, ok = model.JoinPath("audit_log", "audit_log")
	assert.True(t, ok) // self join is trivially reachable

	_, ok = model.JoinPath("orders", "missing")
	assert.False(t, ok)
}

func TestJoinPath_Symmetric(t *testing.T) {
	model := buildTestModel(t)

	pairs := [][2]string{
		{"orders", "customers"},
		{"customers", "products"},
		{"orders", "audit_log"},
		{"products", "order_items"},
	}

	for _, pair := range pairs {
		_, forward := model.JoinPath(pair[0], pair[1])
		_, backward := model.JoinPath(pair[1], pair[0])
		assert.Equal(t, forward, backward)
	}
}

func TestJoinPath_CaseInsensitive(t *testing.T) {
	model := buildTestModel(t)

	path, ok := model.JoinPath("Orders", "CUSTOMERS")
	assert.True(t, ok)
	assert.Equal(t, 1, len(path))
}

func TestRelationshipGraph_Edges(t *testing.T) {
	model := buildTestModel(t)
	graph := model.Graph()

	assert.Equal(t, 3, graph.EdgeCount())
	assert.True(t, graph.HasNode("orders"))
	assert.True(t, graph.HasNode("CUSTOMERS"))
	assert.False(t, graph.HasNode("audit_log"))

	// Edge metadata keeps the original FK direction: From is the dependent table.
	first := graph.Edges()[0]
	assert.Equal(t, "orders", first.From)
	assert.Equal(t, "customer_id", first.FromColumn)
	assert.Equal(t, "customers", first.To)
	assert.Equal(t, "id", first.ToColumn)
}
