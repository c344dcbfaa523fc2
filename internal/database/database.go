package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Row is a single result row keyed by column name.
type Row map[string]any

// Executor is the statement-execution surface repositories depend on.
type Executor interface {
	Execute(statement string, params ...any) ([]Row, error)
	InsertRows(table string, columns []string, rows [][]any) (*int64, error)
}

// Store runs each statement as its own transactional unit against
// PostgreSQL. Every call opens a fresh connection, commits, and closes it;
// nothing is pooled or shared across calls, so callers must treat each call
// as atomic and independent.
type Store struct {
	dsn string
}

// NewStore builds a store from the database connection settings.
func NewStore(host, port, user, password, name string) *Store {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, name,
	)
	return &Store{dsn: dsn}
}

// readKeywords are the leading statement keywords whose results are fetched.
var readKeywords = []string{"SELECT", "SHOW", "DESCRIBE", "EXPLAIN"}

// wantsRows reports whether executing statement should fetch a result set:
// reads always do, writes only when they request rows back explicitly.
func wantsRows(statement string) bool {
	upper := strings.ToUpper(strings.TrimSpace(statement))
	for _, keyword := range readKeywords {
		if strings.HasPrefix(upper, keyword) {
			return true
		}
	}
	return strings.Contains(upper, "RETURNING")
}

// Execute runs one statement with positional parameter binding and returns
// any fetched rows. Connectivity and statement errors propagate to the
// caller; there are no retries.
func (s *Store) Execute(statement string, params ...any) ([]Row, error) {
	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if !wantsRows(statement) {
		if _, err := tx.Exec(statement, params...); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to execute statement: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit: %w", err)
		}
		return nil, nil
	}

	rows, err := tx.Query(statement, params...)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to execute statement: %w", err)
	}

	result, err := scanRows(rows)
	rows.Close()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return result, nil
}

// scanRows reads every row into a column-keyed map. Text columns arrive from
// the driver as byte slices and are normalized to strings.
func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return result, nil
}

// InsertRows inserts one or more rows into table with a single parameterized
// multi-row INSERT and returns the id of the first inserted row, or nil if
// the database returned nothing.
func (s *Store) InsertRows(table string, columns []string, rows [][]any) (*int64, error) {
	statement, params := buildInsert(table, columns, rows)
	result, err := s.Execute(statement, params...)
	if err != nil {
		return nil, err
	}
	return extractInsertID(table, result), nil
}

// buildInsert constructs the multi-row INSERT statement. Every value is
// bound positionally except string values that are literally nested
// sub-selects, which are spliced verbatim. That escape hatch exists for
// computed foreign keys in seed data only; it must never see caller input.
func buildInsert(table string, columns []string, rows [][]any) (string, []any) {
	var params []any
	clauses := make([]string, 0, len(rows))
	for _, row := range rows {
		placeholders := make([]string, 0, len(row))
		for _, value := range row {
			if sub, ok := value.(string); ok && strings.HasPrefix(strings.TrimSpace(sub), "(SELECT") {
				placeholders = append(placeholders, sub)
				continue
			}
			params = append(params, value)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(params)))
		}
		clauses = append(clauses, "("+strings.Join(placeholders, ",")+")")
	}

	statement := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s RETURNING *",
		table, strings.Join(columns, ","), strings.Join(clauses, ","),
	)
	return statement, params
}

// extractInsertID pulls an identifier out of the first returned row, trying
// the column conventions in order: a generic id, the singular form, then the
// plural form.
func extractInsertID(table string, rows []Row) *int64 {
	if len(rows) == 0 {
		return nil
	}

	candidates := []string{"id"}
	if len(table) > 0 {
		candidates = append(candidates, table[:len(table)-1]+"_id", table+"_id")
	}

	for _, name := range candidates {
		if value, ok := rows[0][name]; ok {
			if id, ok := toInt64(value); ok {
				return &id
			}
		}
	}
	return nil
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	}
	return 0, false
}
