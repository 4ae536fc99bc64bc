package store

import (
	"database/sql"
	"fmt"

	"github.com/go-gorp/gorp/v3"
	_ "github.com/mattn/go-sqlite3"
)

type record struct {
	Key   string `db:"record_key"`
	Value string `db:"record_value"`
}

// SQLiteStore persists records in a single key/value table
type SQLiteStore struct {
	dbmap *gorp.DbMap
}

// OpenSQLite opens (or creates) the database file at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	dbmap := &gorp.DbMap{Db: db, Dialect: gorp.SqliteDialect{}}
	dbmap.AddTableWithName(record{}, "records").SetKeys(false, "Key")
	if err := dbmap.CreateTablesIfNotExists(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return &SQLiteStore{dbmap: dbmap}, nil
}

// Get retrieves a record by key
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	obj, err := s.dbmap.Get(record{}, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	return []byte(obj.(*record).Value), nil
}

// Set inserts or replaces a record
func (s *SQLiteStore) Set(key string, value []byte) error {
	r := &record{Key: key, Value: string(value)}
	count, err := s.dbmap.Update(r)
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	if count == 0 {
		if err := s.dbmap.Insert(r); err != nil {
			return fmt.Errorf("insert %s: %w", key, err)
		}
	}
	return nil
}

// Delete removes a record; deleting a missing key is not an error
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.dbmap.Delete(&record{Key: key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.dbmap.Db.Close()
}
