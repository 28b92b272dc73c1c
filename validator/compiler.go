package validator

import (
	"fmt"
	"strings"

	"github.com/schemalens/schemalens"
)

// Compile assembles SQL text from a query specification, one clause per
// line, terminated with a semicolon. The assembly is deterministic and
// order-preserving. No quoting, escaping, or dialect rewriting happens here:
// the compiler trusts that validation already confirmed every reference.
func Compile(query *schemalens.QuerySpec) (string, error) {
	if query == nil {
		return "", schemalens.ErrNilQuery
	}

	clauses := []string{
		"SELECT " + strings.Join(query.Select, ", "),
		"FROM " + query.From,
	}

	for _, join := range query.Joins {
		clauses = append(clauses, fmt.Sprintf("%s JOIN %s ON %s", join.Type, join.Table, join.On))
	}

	if len(query.Where) > 0 {
		clauses = append(clauses, "WHERE "+strings.Join(query.Where, " AND "))
	}

	if len(query.GroupBy) > 0 {
		clauses = append(clauses, "GROUP BY "+strings.Join(query.GroupBy, ", "))
	}

	if len(query.Having) > 0 {
		clauses = append(clauses, "HAVING "+strings.Join(query.Having, " AND "))
	}

	if len(query.OrderBy) > 0 {
		clauses = append(clauses, "ORDER BY "+strings.Join(query.OrderBy, ", "))
	}

	return strings.Join(clauses, "\n") + ";", nil
}
