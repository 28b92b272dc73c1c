package validator

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/schemalens/schemalens"
)

func TestCompile_AllClauses(t *testing.T) {
	query := &schemalens.QuerySpec{
		Select: []string{"o.id", "c.name", "SUM(o.total) AS revenue"},
		From:   "orders o",
		Joins: []schemalens.JoinSpec{
			{Type: "INNER", Table: "customers c", On: "o.customer_id = c.id"},
			{Type: "LEFT", Table: "audit_log a", On: "a.id = o.id"},
		},
		Where:   []string{"o.status = 'shipped'", "o.total > 0"},
		GroupBy: []string{"o.id", "c.name"},
		Having:  []string{"SUM(o.total) > 100"},
		OrderBy: []string{"revenue DESC"},
	}

	sql, err := Compile(query)
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT o.id, c.name, SUM(o.total) AS revenue\n"+
			"FROM orders o\n"+
			"INNER JOIN customers c ON o.customer_id = c.id\n"+
			"LEFT JOIN audit_log a ON a.id = o.id\n"+
			"WHERE o.status = 'shipped' AND o.total > 0\n"+
			"GROUP BY o.id, c.name\n"+
			"HAVING SUM(o.total) > 100\n"+
			"ORDER BY revenue DESC;",
		sql)
}

func TestCompile_MinimalQuery(t *testing.T) {
	query := &schemalens.QuerySpec{
		Select: []string{"orders.id"},
		From:   "orders",
	}

	sql, err := Compile(query)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT orders.id\nFROM orders;", sql)
}

func TestCompile_Deterministic(t *testing.T) {
	query := &schemalens.QuerySpec{
		Select:  []string{"orders.id", "orders.total"},
		From:    "orders",
		Where:   []string{"orders.total > 10"},
		OrderBy: []string{"orders.total DESC"},
	}

	first, err := Compile(query)
	assert.NoError(t, err)

	second, err := Compile(query)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompile_NilQuery(t *testing.T) {
	_, err := Compile(nil)
	assert.IsError(t, err, schemalens.ErrNilQuery)
}
