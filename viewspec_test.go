package schemalens

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSanitizeViewName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces and punctuation", "Customer Orders!!", "customer_orders"},
		{"hyphens", "monthly-revenue", "monthly_revenue"},
		{"already normalized", "order_totals", "order_totals"},
		{"mixed case", "ActiveUsers", "activeusers"},
		{"surrounding whitespace", "  weekly summary  ", "weekly_summary"},
		{"digits preserved", "top10 products", "top10_products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SanitizeViewName(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeViewName_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "!!!", "@#$%"} {
		_, err := SanitizeViewName(input)
		assert.IsError(t, err, ErrEmptyViewName)
	}
}

func TestJoinSpecNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "inner", "INNER"},
		{"mixed case", "Left", "LEFT"},
		{"surrounding whitespace", " right ", "RIGHT"},
		{"full", "FULL", "FULL"},
		{"cross", "cross", "CROSS"},
		{"empty defaults to inner", "", "INNER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			join := JoinSpec{Type: tt.input, Table: "customers", On: "a.b = c.d"}
			assert.NoError(t, join.Normalize())
			assert.Equal(t, tt.expected, join.Type)
		})
	}
}

func TestJoinSpecNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"OUTER", "NATURAL", "SELF"} {
		join := JoinSpec{Type: input}
		assert.IsError(t, join.Normalize(), ErrInvalidJoinType)
	}
}

func TestViewDefinitionNormalize(t *testing.T) {
	view := ViewDefinition{
		Name: "Customer Orders!!",
		Query: QuerySpec{
			Select: []string{"orders.id"},
			From:   "orders",
			Joins:  []JoinSpec{{Type: "left", Table: "customers", On: "orders.customer_id = customers.id"}},
		},
	}

	assert.NoError(t, view.Normalize())
	assert.Equal(t, "customer_orders", view.Name)
	assert.Equal(t, "LEFT", view.Query.Joins[0].Type)
}

func TestViewDefinitionNormalize_ConstructionErrors(t *testing.T) {
	blank := ViewDefinition{Name: "***"}
	assert.IsError(t, blank.Normalize(), ErrEmptyViewName)

	badJoin := ViewDefinition{
		Name:  "ok_view",
		Query: QuerySpec{Joins: []JoinSpec{{Type: "SIDEWAYS"}}},
	}
	assert.IsError(t, badJoin.Normalize(), ErrInvalidJoinType)
}
