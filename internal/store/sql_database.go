package store

import (
	"database/sql"

	"github.com/MKhiriev/go-soulkey/internal/logger"
)

// DB wraps the connection to a defaults database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}
