package repos

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite file (or ":memory:") and brings the schema up to date.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: sqlite serialises writers anyway, and ":memory:" is per connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		return nil, err
	}
	if err := MigrateSQLite(db.DB); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenStore picks the profile store backend.
func OpenStore(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "memory":
		log.Println("[store] using in-memory profile store")
		return NewMemoryStore(), nil
	case "postgres":
		if err := MigratePostgres(ctx, dsn); err != nil {
			return nil, err
		}
		pool, err := ConnectPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		log.Println("[store] using postgres profile store")
		return NewPostgresStore(pool), nil
	case "sqlite", "":
		db, err := OpenDB(dsn)
		if err != nil {
			return nil, err
		}
		log.Printf("[store] using sqlite profile store at %s", dsn)
		return NewSQLiteStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
