package schemalens

// ColumnDocument describes a single column in a raw schema document.
type ColumnDocument struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// ForeignKeyDocument declares a foreign key from one column to another table's column.
type ForeignKeyDocument struct {
	Column           string `json:"column" yaml:"column"`
	ReferencesTable  string `json:"references_table" yaml:"references_table"`
	ReferencesColumn string `json:"references_column" yaml:"references_column"`
}

// TableDocument describes a single table in a raw schema document.
type TableDocument struct {
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description" yaml:"description"`
	Columns     []ColumnDocument     `json:"columns" yaml:"columns"`
	ForeignKeys []ForeignKeyDocument `json:"foreign_keys" yaml:"foreign_keys"`
}

// SchemaDocument is the raw, untrusted schema description consumed by the
// schema model builder. It is produced by hand, by schema extraction from a
// live database, or by an external tool.
type SchemaDocument struct {
	Tables []TableDocument `json:"tables" yaml:"tables"`
}
