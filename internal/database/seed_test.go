package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSeedCSV(t *testing.T) {
	path := writeSeedFile(t, "name,location,website\nMSU,\"East Lansing, MI\",NULL\n")

	columns, rows, err := readSeedCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "location", "website"}, columns)
	require.Len(t, rows, 1)
	assert.Equal(t, "MSU", rows[0][0])
	// Quoted values keep their embedded commas.
	assert.Equal(t, "East Lansing, MI", rows[0][1])
	// The literal NULL token denotes an absent value.
	assert.Nil(t, rows[0][2])
}

func TestReadSeedCSV_MissingFile(t *testing.T) {
	_, _, err := readSeedCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSeedCSV_HeaderOnly(t *testing.T) {
	path := writeSeedFile(t, "email,password,role\n")

	columns, rows, err := readSeedCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "password", "role"}, columns)
	assert.Empty(t, rows)
}

func TestDigestPasswords(t *testing.T) {
	columns := []string{"email", "password", "role"}
	rows := [][]any{
		{"a@example.com", "plaintext", "admin"},
		{"b@example.com", nil, "user"},
	}

	err := digestPasswords(columns, rows, func(plaintext string) (string, error) {
		return "digest(" + plaintext + ")", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "digest(plaintext)", rows[0][1])
	assert.Nil(t, rows[1][1])
}

func TestDigestPasswords_NoPasswordColumn(t *testing.T) {
	rows := [][]any{{"MSU"}}
	err := digestPasswords([]string{"name"}, rows, func(string) (string, error) {
		t.Fatal("digester should not be called")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "MSU", rows[0][0])
}
