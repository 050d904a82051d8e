package repositories

import (
	"errors"
	"testing"

	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBadQuery(t *testing.T) {
	cause := errors.New("select statements must have at least one result column")

	err := BadQuery(cause)

	assert.True(t, pkgerrors.IsDatabase(err))
	assert.ErrorIs(t, err, ErrBadQuery)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to build query", pkgerrors.GetMessage(err))
}

func TestBadQuery_NilCause(t *testing.T) {
	err := BadQuery(nil)

	assert.True(t, pkgerrors.IsDatabase(err))
	assert.ErrorIs(t, err, ErrBadQuery)
}

func TestSqBuilder_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := SqBuilder.Select("id").From("instagram_posts").Where("shop = ?", "acme").ToSql()

	assert.NoError(t, err)
	assert.Equal(t, "SELECT id FROM instagram_posts WHERE shop = $1", query)
	assert.Equal(t, []any{"acme"}, args)
}
