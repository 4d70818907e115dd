package fdl

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util"
	_ "modernc.org/sqlite"
)

// Persistable is implemented by every entity that maps onto a table
type Persistable interface {
	GetTableName() string
}

// Store is a SQLite database holding dataset tables
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (creating if needed) the SQLite database at path.
// Use ":memory:" for a throwaway store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// an in-memory database only lives as long as its connection
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	logger.Debug("Database opened", path)
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateTable creates a table for the given persistable object using struct tags
func (s *Store) CreateTable(obj Persistable) error {
	tableName := obj.GetTableName()
	createSQL := generateCreateTableSQL(obj, tableName)

	logger.Debug("Creating table with SQL", createSQL)

	if _, err := s.db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	for _, query := range generateIndexSQL(obj, tableName) {
		logger.Debug("Creating index with SQL", query)
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", tableName, err)
		}
	}
	return nil
}

// generateCreateTableSQL generates CREATE TABLE SQL from struct tags
func generateCreateTableSQL(obj any, tableName string) string {
	var columns []string
	var primaryKeys []string
	var foreignKeys []string

	for _, c := range columnsOf(reflect.TypeOf(obj)) {
		columns = append(columns, fmt.Sprintf("%s %s", c.name, c.dbType))
		if c.primary {
			primaryKeys = append(primaryKeys, c.name)
		}
		// format: "table.column"
		if parts := strings.Split(c.fk, "."); len(parts) == 2 {
			foreignKeys = append(foreignKeys, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE RESTRICT ON UPDATE RESTRICT",
				c.name, parts[0], parts[1]))
		}
	}

	if len(primaryKeys) > 0 {
		columns = append(columns, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(primaryKeys, ", ")))
	}
	columns = append(columns, foreignKeys...)

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(columns, ", "))
}

// generateIndexSQL generates index creation SQL from struct tags
func generateIndexSQL(obj any, tableName string) []string {
	var indexSQL []string
	for _, c := range columnsOf(reflect.TypeOf(obj)) {
		if !c.indexed {
			continue
		}
		indexName := fmt.Sprintf("idx_%s_%s", tableName, c.name)
		indexSQL = append(indexSQL, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", indexName, tableName, c.name))
	}
	return indexSQL
}

// getInsertData extracts column names, placeholders, and values for INSERT
func getInsertData(obj any) ([]string, []string, []any) {
	v := structValue(obj)
	var columns []string
	var placeholders []string
	var values []any
	for _, c := range columnsOf(v.Type()) {
		columns = append(columns, c.name)
		placeholders = append(placeholders, "?")
		values = append(values, sqlValue(v.FieldByIndex(c.index)))
	}
	return columns, placeholders, values
}

// sqlValue unwraps named types such as Position so the driver sees plain values
func sqlValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		return v.Interface()
	}
}

// getSelectData extracts column names and scan destinations for SELECT
func getSelectData(obj any) ([]string, []any) {
	v := structValue(obj)
	var columns []string
	var destinations []any
	for _, c := range columnsOf(v.Type()) {
		columns = append(columns, c.name)
		destinations = append(destinations, v.FieldByIndex(c.index).Addr().Interface())
	}
	return columns, destinations
}

// BulkInsert inserts every object in a single transaction
func (s *Store) BulkInsert(objects []Persistable) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, obj := range objects {
		tableName := obj.GetTableName()
		columns, placeholders, values := getInsertData(obj)
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		if _, err := tx.Exec(query, values...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", tableName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of rows in table
func (s *Store) Count(table string) (int, error) {
	var count int
	if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// FindAll retrieves every row of table in insertion order
func FindAll[T any](s *Store, table string) ([]T, error) {
	return FindWhere[T](s, table, "1 = 1")
}

// FindWhere executes a custom WHERE query against table
func FindWhere[T any](s *Store, table, whereClause string, args ...any) ([]T, error) {
	columns, _ := getSelectData(new(T))
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY rowid", strings.Join(columns, ", "), table, whereClause)

	logger.Debug("FindWhere SQL", query)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		var row T
		_, destinations := getSelectData(&row)
		if err := rows.Scan(destinations...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}
		results = append(results, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows from %s: %w", table, err)
	}
	return results, nil
}

func asPersistable[T any, P interface {
	*T
	Persistable
}](rows []T) []Persistable {
	out := make([]Persistable, len(rows))
	for i := range rows {
		out[i] = P(&rows[i])
	}
	return out
}

// Save creates every dataset table and inserts all rows. Referenced tables are
// written before the tables that point at them.
func (s *Store) Save(ds *Dataset) error {
	tables := []Persistable{
		&LeagueInfo{}, &Season{}, &Club{}, &StaffMember{}, &Player{}, &Player{IsYouth: true},
		&Match{}, &LeagueTableRow{}, &TransferRecord{},
	}
	for _, t := range tables {
		if err := s.CreateTable(t); err != nil {
			return err
		}
	}

	var objects []Persistable
	objects = append(objects, ds.League)
	objects = append(objects, asPersistable(ds.Seasons)...)
	objects = append(objects, asPersistable(ds.Clubs)...)
	objects = append(objects, asPersistable(ds.Staff)...)
	objects = append(objects, asPersistable(ds.Players)...)
	objects = append(objects, asPersistable(ds.Youth)...)
	objects = append(objects, asPersistable(ds.Matches)...)
	objects = append(objects, asPersistable(ds.Table)...)
	objects = append(objects, asPersistable(ds.Transfers)...)
	return s.BulkInsert(objects)
}

// WriteSQLite exports the dataset to a SQLite file at path. The database is built
// beside the target and renamed over it once complete.
func (ds *Dataset) WriteSQLite(path string) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	os.Remove(tmp)

	store, err := OpenStore(tmp)
	if err != nil {
		return err
	}
	if err := store.Save(ds); err != nil {
		store.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to export dataset to %s: %w", path, err)
	}
	if err := store.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move database into place: %w", err)
	}
	logger.Info("Wrote SQLite export", path)
	return nil
}
