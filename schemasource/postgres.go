package schemasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schemalens/schemalens"
)

func extractPostgres(ctx context.Context, db *sql.DB) (*schemalens.SchemaDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
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

		if table.Columns, err = postgresColumns(ctx, db, name); err != nil {
			return nil, err
		}

		if table.ForeignKeys, err = postgresForeignKeys(ctx, db, name); err != nil {
			return nil, err
		}

		doc.Tables = append(doc.Tables, table)
	}

	return doc, nil
}

func postgresColumns(ctx context.Context, db *sql.DB, tableName string) ([]schemalens.ColumnDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT
			c.column_name,
			c.data_type,
			COALESCE(col_description(pgc.oid, c.ordinal_position), '') AS description
		FROM information_schema.columns c
		LEFT JOIN pg_catalog.pg_class pgc
			ON pgc.relname = c.table_name
			AND pgc.relnamespace = 'public'::regnamespace
		WHERE c.table_schema = 'public' AND c.table_name = $1
		ORDER BY c.ordinal_position`, tableName)
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

func postgresForeignKeys(ctx context.Context, db *sql.DB, tableName string) ([]schemalens.ForeignKeyDocument, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = 'public'
			AND tc.table_name = $1
		ORDER BY kcu.ordinal_position`, tableName)
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
