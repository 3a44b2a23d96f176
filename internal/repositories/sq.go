package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// NullableID maps a zero surrogate key to SQL NULL.
func NullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
