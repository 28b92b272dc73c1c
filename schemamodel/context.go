package schemamodel

import (
	"fmt"
	"sort"
	"strings"
)

// SemanticContext renders the whole schema as human-readable text, intended
// as context for an external view generator. Tables are listed in name
// order; primary and foreign keys are annotated inline.
func (m *Model) SemanticContext() string {
	parts := []string{"Database Schema:\n"}

	names := m.TableNames()
	sort.Strings(names)

	for _, name := range names {
		table, _ := m.Table(name)

		parts = append(parts, fmt.Sprintf("\nTable: %s", table.Name))
		if table.Description != "" {
			parts = append(parts, fmt.Sprintf("Description: %s", table.Description))
		}

		parts = append(parts, "Columns:")

		for _, col := range table.Columns {
			info := fmt.Sprintf("  - %s (%s)", col.Name, col.Type)
			if col.Description != "" {
				info += ": " + col.Description
			}

			switch {
			case col.IsPrimaryKey:
				info += " [PRIMARY KEY]"
			case col.IsForeignKey && col.References != nil:
				info += fmt.Sprintf(" [FK -> %s.%s]", col.References.Table, col.References.Column)
			}

			parts = append(parts, info)
		}
	}

	return strings.Join(parts, "\n")
}
