package producttag

import (
	"testing"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveQuery_StoresBlobsPerShop(t *testing.T) {
	set := domain.NewProductTagSet()
	set.Tags["p1"] = []string{"gid://shopify/Product/1"}
	set.Details["p1"] = []domain.ProductDetail{{ID: "gid://shopify/Product/1", Title: "Mug", Price: "12.00"}}

	builder, err := saveQuery("acme", set)
	require.NoError(t, err)
	query, args, err := builder.ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO shop_product_tags (shop,tags,details,updated_at) VALUES ($1,$2,$3,NOW())")
	assert.Contains(t, query, "ON CONFLICT (shop) DO UPDATE SET")
	require.Len(t, args, 3)
	assert.Equal(t, "acme", args[0])
	assert.JSONEq(t, `{"p1":["gid://shopify/Product/1"]}`, args[1].(string))
	assert.JSONEq(t, `{"p1":[{"id":"gid://shopify/Product/1","title":"Mug","price":"12.00","image":""}]}`, args[2].(string))
}
