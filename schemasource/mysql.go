package schemasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schemalens/schemalens"
)

func extractMySQL(ctx context.Context, db *sql.DB) (*schemalens.SchemaDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT table_name, table_comment
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []schemalens.TableDocument

	for rows.Next() {
		var (
			name    string
			comment sql.NullString
		)

		if err := rows.Scan(&name, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}

		tables = append(tables, schemalens.TableDocument{
			Name:        name,
			Description: comment.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	doc := &schemalens.SchemaDocument{}

	for _, table := range tables {
		if table.Columns, err = mysqlColumns(ctx, db, table.Name); err != nil {
			return nil, err
		}

		if table.ForeignKeys, err = mysqlForeignKeys(ctx, db, table.Name); err != nil {
			return nil, err
		}

		doc.Tables = append(doc.Tables, table)
	}

	return doc, nil
}

func mysqlColumns(ctx context.Context, db *sql.DB, tableName string) ([]schemalens.ColumnDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type, column_comment
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}
	defer rows.Close()

	var columns []schemalens.ColumnDocument

	for rows.Next() {
		var col schemalens.ColumnDocument
		if err := rows.Scan(&col.Name, &col.Type, &col.Description); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", tableName, err)
		}

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func mysqlForeignKeys(ctx context.Context, db *sql.DB, tableName string) ([]schemalens.ForeignKeyDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT column_name, referenced_table_name, referenced_column_name
		FROM information_schema.key_column_usage
		WHERE table_schema = DATABASE()
			AND table_name = ?
			AND referenced_table_name IS NOT NULL
		ORDER BY ordinal_position`, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to read foreign keys of %s: %w", tableName, err)
	}
	defer rows.Close()

	var fks []schemalens.ForeignKeyDocument

	for rows.Next() {
		var fk schemalens.ForeignKeyDocument
		if err := rows.Scan(&fk.Column, &fk.ReferencesTable, &fk.ReferencesColumn); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key of %s: %w", tableName, err)
		}

		fks = append(fks, fk)
	}

	return fks, rows.Err()
}
