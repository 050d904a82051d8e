package instagramimpl

import (
	"context"
	"net/url"

	"github.com/orgball2608/insta-shop-sync/internal/graphapi"
	"github.com/orgball2608/insta-shop-sync/internal/instagram"
)

type page[T any] struct {
	Data   []T `json:"data"`
	Paging struct {
		Cursors struct {
			After string `json:"after"`
		} `json:"cursors"`
		Next string `json:"next"`
	} `json:"paging"`
}

// fetchAllPages walks a cursor-paginated collection in upstream order and stops
// as soon as maxItems items are collected or no next cursor is returned.
// An empty page or a cursor that does not advance also ends the walk.
func fetchAllPages[T any](ctx context.Context, graph graphapi.Caller, path string, params url.Values, maxItems int) ([]T, error) {
	if maxItems < 0 {
		maxItems = instagram.DefaultMaxItems
	}
	items := make([]T, 0)
	if maxItems == 0 {
		return items, nil
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}

	for {
		var resp page[T]
		if err := graph.Get(ctx, path, query, &resp); err != nil {
			return nil, err
		}

		if len(resp.Data) == 0 {
			return items, nil
		}
		items = append(items, resp.Data...)
		if len(items) >= maxItems {
			return items[:maxItems], nil
		}

		after := resp.Paging.Cursors.After
		if after == "" || resp.Paging.Next == "" || after == query.Get("after") {
			return items, nil
		}
		query.Set("after", after)
	}
}
