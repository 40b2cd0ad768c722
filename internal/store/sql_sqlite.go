package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-soulkey/internal/logger"
	"github.com/MKhiriev/go-soulkey/models"
)

// NewConnectSQLite opens the SQLite file at path read-only and pings it.
// The file must already exist.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		log.Err(err).Str("path", path).Msg("error opening defaults database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("path", path).Msg("error connecting defaults database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	log.Debug().Str("path", path).Msg("connected to defaults database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// OpenSQLiteDefaults loads every default held in the SQLite file at path and
// closes the connection.
func OpenSQLiteDefaults(ctx context.Context, path string, log *logger.Logger) (map[string]models.TypedValue, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	values, err := LoadDefaultsDB(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("path", path).Msg("error loading defaults from database")
		return nil, err
	}
	db.logger.Debug().Str("path", path).Int("count", len(values)).Msg("loaded defaults from database")

	return values, nil
}
