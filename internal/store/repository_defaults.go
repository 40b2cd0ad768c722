package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-soulkey/internal/convert"
	"github.com/MKhiriev/go-soulkey/models"
)

// LoadDefaultsDB reads every row of the soulkey_defaults table. The value
// column holds a JSON literal; anything that does not parse as JSON is taken
// as a bare string.
func LoadDefaultsDB(ctx context.Context, db *sql.DB) (map[string]models.TypedValue, error) {
	query, args, err := selectDefaultsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]models.TypedValue)
	for rows.Next() {
		var (
			token      models.ReferenceToken
			tag, value string
		)
		if err = rows.Scan(&token.ProjectID, &token.EnvKey, &tag, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if token.ProjectID == "" || token.EnvKey == "" || tag == "" {
			return nil, fmt.Errorf("%w: row %q", ErrInvalidDefault, token.CompositeKey())
		}
		if err = checkAddressable(token); err != nil {
			return nil, err
		}
		if _, dup := values[token.CompositeKey()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDefault, token.CompositeKey())
		}

		values[token.CompositeKey()] = convert.ConvertJSON(tag, []byte(value))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return values, nil
}
