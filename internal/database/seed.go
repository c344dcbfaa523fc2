package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// tableOrder lists the tables in foreign-key dependency order. Creation and
// seeding walk it forward; purging drops in reverse.
var tableOrder = []string{"institutions", "positions", "experiences", "skills", "users"}

// Digester produces the at-rest form of a seed password.
type Digester func(plaintext string) (string, error)

// Provision creates the schema and bulk-loads the initial rows. Each table
// needs a create_tables/<table>.sql statement file; a matching
// initial_data/<table>.csv is optional. Seed passwords in the users table
// are digested before insertion so plaintext never reaches the database.
func (s *Store) Provision(dataPath string, purge bool, digest Digester) error {
	if purge {
		for i := len(tableOrder) - 1; i >= 0; i-- {
			if _, err := s.Execute(fmt.Sprintf("DROP TABLE IF EXISTS %s", tableOrder[i])); err != nil {
				return fmt.Errorf("failed to drop %s: %w", tableOrder[i], err)
			}
		}
	}

	for _, table := range tableOrder {
		ddl, err := os.ReadFile(filepath.Join(dataPath, "create_tables", table+".sql"))
		if err != nil {
			return fmt.Errorf("failed to read create statement for %s: %w", table, err)
		}
		if _, err := s.Execute(string(ddl)); err != nil {
			return fmt.Errorf("failed to create %s: %w", table, err)
		}

		if err := s.seedTable(table, dataPath, digest); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("No seed file found for %s", table)
				continue
			}
			// A bad seed file should not abort provisioning of later tables.
			log.Printf("Error importing data for %s: %v", table, err)
			continue
		}
		log.Printf("Imported seed data for %s", table)
	}
	return nil
}

func (s *Store) seedTable(table, dataPath string, digest Digester) error {
	columns, rows, err := readSeedCSV(filepath.Join(dataPath, "initial_data", table+".csv"))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	if table == "users" {
		if err := digestPasswords(columns, rows, digest); err != nil {
			return err
		}
	}

	_, err = s.InsertRows(table, columns, rows)
	return err
}

// readSeedCSV parses a seed file into its header columns and value rows.
// The literal token NULL denotes an absent value.
func readSeedCSV(path string) ([]string, [][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("seed file %s has no header row", path)
	}

	columns := records[0]
	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, value := range record {
			if value == "NULL" {
				row[i] = nil
			} else {
				row[i] = value
			}
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// digestPasswords replaces every non-empty value in the password column with
// its one-way digest.
func digestPasswords(columns []string, rows [][]any, digest Digester) error {
	index := -1
	for i, column := range columns {
		if column == "password" {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	for _, row := range rows {
		plaintext, ok := row[index].(string)
		if !ok || plaintext == "" {
			continue
		}
		hashed, err := digest(plaintext)
		if err != nil {
			return fmt.Errorf("failed to digest seed password: %w", err)
		}
		row[index] = hashed
	}
	return nil
}
