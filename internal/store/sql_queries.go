package store

import (
	"github.com/Masterminds/squirrel"
)

const defaultsTable = "soulkey_defaults"

func selectDefaultsQuery() (string, []any, error) {
	return squirrel.
		Select("project_id", "env_key", "type", "value").
		From(defaultsTable).
		OrderBy("project_id", "env_key").
		PlaceholderFormat(squirrel.Question).
		ToSql()
}
