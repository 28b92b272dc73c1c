package schemasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schemalens/schemalens"
)

func extractSQLite(ctx context.Context, db *sql.DB) (*schemalens.SchemaDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	doc := &schemalens.SchemaDocument{}

	for _, name := range names {
		table := schemalens.TableDocument{Name: name}

		if table.Columns, err = sqliteColumns(ctx, db, name); err != nil {
			return nil, err
		}

		if table.ForeignKeys, err = sqliteForeignKeys(ctx, db, name); err != nil {
			return nil, err
		}

		doc.Tables = append(doc.Tables, table)
	}

	return doc, nil
}

func sqliteColumns(ctx context.Context, db *sql.DB, tableName string) ([]schemalens.ColumnDocument, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}
	defer rows.Close()

	var columns []schemalens.ColumnDocument

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    sql.NullString
			notNull    int
			defaultVal sql.NullString
			pk         int
		)

		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", tableName, err)
		}

		columns = append(columns, schemalens.ColumnDocument{
			Name: name,
			Type: colType.String,
		})
	}

	return columns, rows.Err()
}

func sqliteForeignKeys(ctx context.Context, db *sql.DB, tableName string) ([]schemalens.ForeignKeyDocument, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%q)", tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to read foreign keys of %s: %w", tableName, err)
	}
	defer rows.Close()

	var fks []schemalens.ForeignKeyDocument

	for rows.Next() {
		var (
			id, seq            int
			targetTable, from  string
			to                 sql.NullString // NULL when the FK targets the implicit primary key
			onUpdate, onDelete string
			match              string
		)

		if err := rows.Scan(&id, &seq, &targetTable, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key of %s: %w", tableName, err)
		}

		target := to.String
		if target == "" {
			target = "id"
		}

		fks = append(fks, schemalens.ForeignKeyDocument{
			Column:           from,
			ReferencesTable:  targetTable,
			ReferencesColumn: target,
		})
	}

	return fks, rows.Err()
}
