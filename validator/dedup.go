package validator

import (
	"sort"
	"strings"

	"github.com/schemalens/schemalens"
)

// Deduplicate removes view specifications whose canonical signature was
// already seen, keeping the first occurrence and the original order.
//
// The signature is syntactic: the set of referenced tables (base plus join
// targets, aliases stripped) paired with the sorted verbatim select list.
// Views selecting semantically identical but textually different columns are
// treated as distinct. Idempotent.
func Deduplicate(views []schemalens.ViewDefinition) []schemalens.ViewDefinition {
	seen := make(map[string]struct{}, len(views))
	unique := make([]schemalens.ViewDefinition, 0, len(views))

	for _, view := range views {
		sig := signature(&view)
		if _, dup := seen[sig]; dup {
			continue
		}

		seen[sig] = struct{}{}
		unique = append(unique, view)
	}

	return unique
}

// signature builds the canonical dedup key for one view.
func signature(view *schemalens.ViewDefinition) string {
	tableSet := map[string]struct{}{tableName(view.Query.From): {}}
	for _, join := range view.Query.Joins {
		tableSet[tableName(join.Table)] = struct{}{}
	}

	tables := make([]string, 0, len(tableSet))
	for table := range tableSet {
		tables = append(tables, table)
	}

	sort.Strings(tables)

	selects := append([]string(nil), view.Query.Select...)
	sort.Strings(selects)

	return strings.Join(tables, "\x1f") + "\x00" + strings.Join(selects, "\x1f")
}
