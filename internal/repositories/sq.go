package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// BadQuery reports a statement that could not be built. It is classified as a
// database failure and still matches ErrBadQuery.
func BadQuery(err error) error {
	if err == nil {
		err = ErrBadQuery
	} else {
		err = errors.Join(ErrBadQuery, err)
	}
	return pkgerrors.Database(err, "failed to build query")
}
