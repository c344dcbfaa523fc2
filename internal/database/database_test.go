package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsRows(t *testing.T) {
	tests := []struct {
		statement string
		want      bool
	}{
		{"SELECT * FROM users", true},
		{"  select count(*) from users", true},
		{"SHOW server_version", true},
		{"EXPLAIN SELECT 1", true},
		{"INSERT INTO users (email) VALUES ($1)", false},
		{"INSERT INTO users (email) VALUES ($1) RETURNING *", true},
		{"DROP TABLE IF EXISTS users", false},
		{"CREATE TABLE users (id SERIAL)", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wantsRows(tt.statement), tt.statement)
	}
}

func TestBuildInsert_SingleRow(t *testing.T) {
	statement, params := buildInsert(
		"skills",
		[]string{"experience_id", "name"},
		[][]any{{int64(7), "Go"}},
	)

	assert.Equal(t, "INSERT INTO skills (experience_id,name) VALUES ($1,$2) RETURNING *", statement)
	assert.Equal(t, []any{int64(7), "Go"}, params)
}

func TestBuildInsert_MultiRowNumbering(t *testing.T) {
	statement, params := buildInsert(
		"skills",
		[]string{"experience_id", "name"},
		[][]any{
			{int64(7), "Go"},
			{int64(7), "PostgreSQL"},
		},
	)

	assert.Equal(t, "INSERT INTO skills (experience_id,name) VALUES ($1,$2),($3,$4) RETURNING *", statement)
	assert.Len(t, params, 4)
}

func TestBuildInsert_SubquerySplicedNotBound(t *testing.T) {
	sub := "(SELECT inst_id FROM institutions WHERE name='MSU')"
	statement, params := buildInsert(
		"positions",
		[]string{"inst_id", "title"},
		[][]any{{sub, "Research Assistant"}},
	)

	assert.Contains(t, statement, sub)
	// Only the title is parameterized; the sub-select is spliced verbatim.
	assert.Equal(t, []any{"Research Assistant"}, params)
	assert.Contains(t, statement, "($1)") // placeholder numbering skips the splice
}

func TestBuildInsert_NilBecomesParameter(t *testing.T) {
	_, params := buildInsert(
		"positions",
		[]string{"title", "end_date"},
		[][]any{{"Intern", nil}},
	)

	require.Len(t, params, 2)
	assert.Nil(t, params[1])
}

func TestExtractInsertID_FallbackChain(t *testing.T) {
	id := extractInsertID("positions", []Row{{"id": int64(3)}})
	require.NotNil(t, id)
	assert.Equal(t, int64(3), *id)

	id = extractInsertID("positions", []Row{{"position_id": int64(4)}})
	require.NotNil(t, id)
	assert.Equal(t, int64(4), *id)

	id = extractInsertID("positions", []Row{{"positions_id": int64(5)}})
	require.NotNil(t, id)
	assert.Equal(t, int64(5), *id)
}

func TestExtractInsertID_GenericIDWins(t *testing.T) {
	id := extractInsertID("positions", []Row{{
		"id":          int64(1),
		"position_id": int64(2),
	}})
	require.NotNil(t, id)
	assert.Equal(t, int64(1), *id)
}

func TestExtractInsertID_NoRows(t *testing.T) {
	assert.Nil(t, extractInsertID("positions", nil))
	assert.Nil(t, extractInsertID("positions", []Row{}))
}

func TestExtractInsertID_NoRecognizedColumn(t *testing.T) {
	assert.Nil(t, extractInsertID("positions", []Row{{"title": "Intern"}}))
}
