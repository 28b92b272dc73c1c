package schemamodel

import (
	"fmt"
	"strings"

	"github.com/schemalens/schemalens"
)

// Reference records the target of a foreign key column.
type Reference struct {
	Table  string
	Column string
}

// Column represents a database column with metadata. Immutable once the
// schema model is built.
type Column struct {
	Name         string
	Type         string
	Description  string
	IsPrimaryKey bool
	IsForeignKey bool
	References   *Reference // set only when IsForeignKey
}

// Table represents a database table.
type Table struct {
	Name        string
	Description string
	Columns     []*Column
	ForeignKeys []schemalens.ForeignKeyDocument // raw declarations, including dropped ones
}

// Column retrieves a column by name (case-insensitive, first match wins).
func (t *Table) Column(name string) *Column {
	for _, col := range t.Columns {
		if strings.EqualFold(col.Name, name) {
			return col
		}
	}

	return nil
}

// Model is the read-only in-memory representation of a relational schema,
// together with its foreign-key relationship graph. Safe to share across
// concurrent validation calls once built.
type Model struct {
	tables   []*Table          // declaration order
	byName   map[string]*Table // lower-cased name -> table
	graph    *RelationshipGraph
	warnings []string
}

// Build constructs a schema model from a raw schema document.
//
// The build runs in three passes: tables and columns first, then foreign key
// resolution (dangling declarations are dropped with a warning), then
// heuristic primary key inference. The heuristic is best-effort: a table may
// end up with zero or several inferred primary keys.
func Build(doc *schemalens.SchemaDocument) (*Model, error) {
	if doc == nil || len(doc.Tables) == 0 {
		return nil, schemalens.ErrNoTables
	}

	m := &Model{
		byName: make(map[string]*Table),
		graph:  newRelationshipGraph(),
	}

	// First pass: create tables and columns
	for _, tableDoc := range doc.Tables {
		if tableDoc.Name == "" {
			m.warnf("skipping table without name")
			continue
		}

		if _, exists := m.byName[strings.ToLower(tableDoc.Name)]; exists {
			m.warnf("skipping duplicate table %q", tableDoc.Name)
			continue
		}

		table := &Table{
			Name:        tableDoc.Name,
			Description: tableDoc.Description,
			ForeignKeys: tableDoc.ForeignKeys,
		}

		for _, colDoc := range tableDoc.Columns {
			if colDoc.Name == "" {
				m.warnf("skipping column without name in table %q", tableDoc.Name)
				continue
			}

			colType := colDoc.Type
			if colType == "" {
				colType = "unknown"
			}

			table.Columns = append(table.Columns, &Column{
				Name:        colDoc.Name,
				Type:        colType,
				Description: colDoc.Description,
			})
		}

		m.tables = append(m.tables, table)
		m.byName[strings.ToLower(table.Name)] = table
	}

	// Second pass: resolve foreign keys and build the relationship graph
	for _, table := range m.tables {
		for _, fk := range table.ForeignKeys {
			if fk.Column == "" || fk.ReferencesTable == "" || fk.ReferencesColumn == "" {
				m.warnf("incomplete foreign key declaration in table %q", table.Name)
				continue
			}

			refTable, ok := m.Table(fk.ReferencesTable)
			if !ok {
				m.warnf("foreign key %s.%s references non-existent table %q",
					table.Name, fk.Column, fk.ReferencesTable)
				continue
			}

			column := table.Column(fk.Column)
			if column == nil {
				m.warnf("foreign key references non-existent column %s.%s",
					table.Name, fk.Column)
				continue
			}

			if refTable.Column(fk.ReferencesColumn) == nil {
				m.warnf("foreign key %s.%s references non-existent column %s.%s",
					table.Name, fk.Column, refTable.Name, fk.ReferencesColumn)
				continue
			}

			column.IsForeignKey = true
			column.References = &Reference{Table: refTable.Name, Column: fk.ReferencesColumn}

			m.graph.addForeignKey(table.Name, fk.Column, refTable.Name, fk.ReferencesColumn)
		}
	}

	// Third pass: heuristic primary key inference
	m.inferPrimaryKeys()

	return m, nil
}

// inferPrimaryKeys marks primary key candidates:
// a non-foreign-key column named "id", or a non-foreign-key column whose
// name ends in "_id" with an integer type.
func (m *Model) inferPrimaryKeys() {
	for _, table := range m.tables {
		for _, col := range table.Columns {
			if col.IsForeignKey {
				continue
			}

			name := strings.ToLower(col.Name)
			if name == "id" {
				col.IsPrimaryKey = true
				continue
			}

			if strings.HasSuffix(name, "_id") && strings.Contains(strings.ToLower(col.Type), "int") {
				col.IsPrimaryKey = true
			}
		}
	}
}

// Table retrieves a table by name (case-insensitive).
func (m *Model) Table(name string) (*Table, bool) {
	table, ok := m.byName[strings.ToLower(name)]
	return table, ok
}

// HasTable reports whether a table exists (case-insensitive).
func (m *Model) HasTable(name string) bool {
	_, ok := m.Table(name)
	return ok
}

// HasColumn reports whether a column exists in a table (case-insensitive).
func (m *Model) HasColumn(tableName, columnName string) bool {
	table, ok := m.Table(tableName)
	if !ok {
		return false
	}

	return table.Column(columnName) != nil
}

// TableNames returns all table names in declaration order.
func (m *Model) TableNames() []string {
	names := make([]string, 0, len(m.tables))
	for _, table := range m.tables {
		names = append(names, table.Name)
	}

	return names
}

// Tables returns all tables in declaration order.
func (m *Model) Tables() []*Table {
	return m.tables
}

// Graph returns the foreign-key relationship graph.
func (m *Model) Graph() *RelationshipGraph {
	return m.graph
}

// Warnings returns diagnostics recorded while building the model.
func (m *Model) Warnings() []string {
	return m.warnings
}

func (m *Model) warnf(format string, args ...any) {
	m.warnings = append(m.warnings, fmt.Sprintf(format, args...))
}

// Document exports the model back into the raw document format. Only the
// declared structure is exported; inferred primary/foreign key flags are not
// part of the document contract.
func (m *Model) Document() *schemalens.SchemaDocument {
	doc := &schemalens.SchemaDocument{}

	for _, table := range m.tables {
		tableDoc := schemalens.TableDocument{
			Name:        table.Name,
			Description: table.Description,
			ForeignKeys: table.ForeignKeys,
		}

		for _, col := range table.Columns {
			tableDoc.Columns = append(tableDoc.Columns, schemalens.ColumnDocument{
				Name:        col.Name,
				Type:        col.Type,
				Description: col.Description,
			})
		}

		doc.Tables = append(doc.Tables, tableDoc)
	}

	return doc
}
