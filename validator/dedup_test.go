package validator

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/schemalens/schemalens"
)

func namedView(name, from string, selectList []string, joinTables ...string) schemalens.ViewDefinition {
	view := schemalens.ViewDefinition{
		Name: name,
		Query: schemalens.QuerySpec{
			Select: selectList,
			From:   from,
		},
	}

	for _, table := range joinTables {
		view.Query.Joins = append(view.Query.Joins, schemalens.JoinSpec{
			Type:  "INNER",
			Table: table,
			On:    "x.y = z.w",
		})
	}

	return view
}

func viewNames(views []schemalens.ViewDefinition) []string {
	names := make([]string, 0, len(views))
	for _, view := range views {
		names = append(names, view.Name)
	}

	return names
}

func TestDeduplicate_PreservesFirstSeenOrder(t *testing.T) {
	views := []schemalens.ViewDefinition{
		namedView("a", "orders", []string{"orders.id"}, "customers"),
		namedView("b", "orders", []string{"orders.total"}),
		namedView("a_again", "orders", []string{"orders.id"}, "customers"),
	}

	unique := Deduplicate(views)
	assert.Equal(t, []string{"a", "b"}, viewNames(unique))
}

func TestDeduplicate_Idempotent(t *testing.T) {
	views := []schemalens.ViewDefinition{
		namedView("a", "orders", []string{"orders.id"}),
		namedView("b", "orders", []string{"orders.id"}),
		namedView("c", "customers", []string{"customers.id"}),
	}

	once := Deduplicate(views)
	twice := Deduplicate(once)
	assert.Equal(t, viewNames(once), viewNames(twice))
}

func TestDeduplicate_SelectOrderIrrelevant(t *testing.T) {
	// The signature sorts the select list, so ordering alone is not a difference.
	views := []schemalens.ViewDefinition{
		namedView("a", "orders", []string{"orders.id", "orders.total"}),
		namedView("b", "orders", []string{"orders.total", "orders.id"}),
	}

	unique := Deduplicate(views)
	assert.Equal(t, []string{"a"}, viewNames(unique))
}

func TestDeduplicate_TextuallyDifferentSelectsKept(t *testing.T) {
	// Syntactic signature: different text means a different view, even when
	// semantically identical.
	views := []schemalens.ViewDefinition{
		namedView("a", "orders", []string{"orders.id"}),
		namedView("b", "orders", []string{"orders.id AS order_id"}),
	}

	unique := Deduplicate(views)
	assert.Equal(t, []string{"a", "b"}, viewNames(unique))
}

func TestDeduplicate_AliasStripped(t *testing.T) {
	views := []schemalens.ViewDefinition{
		namedView("a", "orders o", []string{"orders.id"}, "customers c"),
		namedView("b", "orders", []string{"orders.id"}, "customers"),
	}

	unique := Deduplicate(views)
	assert.Equal(t, []string{"a"}, viewNames(unique))
}

func TestDeduplicate_JoinTablesPartOfSignature(t *testing.T) {
	views := []schemalens.ViewDefinition{
		namedView("a", "orders", []string{"orders.id"}),
		namedView("b", "orders", []string{"orders.id"}, "customers"),
	}

	unique := Deduplicate(views)
	assert.Equal(t, []string{"a", "b"}, viewNames(unique))
}
