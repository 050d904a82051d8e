package instagramimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/orgball2608/insta-shop-sync/internal/instagram"
)

const maxLinkedPages = 100

type linkedPage struct {
	ID                       string `json:"id"`
	InstagramBusinessAccount *struct {
		ID string `json:"id"`
	} `json:"instagram_business_account"`
}

type insightMetric struct {
	Name   string `json:"name"`
	Values []struct {
		Value int `json:"value"`
	} `json:"values"`
}

func tokenParams(token string) url.Values {
	return url.Values{"access_token": {token}}
}

func (ig *IgImpl) BusinessAccountID(ctx context.Context, token string) (string, error) {
	params := tokenParams(token)
	params.Set("fields", "instagram_business_account")

	pages, err := fetchAllPages[linkedPage](ctx, ig.graph, "/me/accounts", params, maxLinkedPages)
	if err != nil {
		return "", fmt.Errorf("failed to list linked pages: %w", err)
	}

	for _, p := range pages {
		if p.InstagramBusinessAccount != nil && p.InstagramBusinessAccount.ID != "" {
			return p.InstagramBusinessAccount.ID, nil
		}
	}

	ig.logger.Info("No linked page exposes an Instagram business account", "pages", len(pages))
	return "", nil
}

func (ig *IgImpl) Username(ctx context.Context, accountID, token string) (string, error) {
	params := tokenParams(token)
	params.Set("fields", "username")

	var resp struct {
		Username string `json:"username"`
	}
	if err := ig.graph.Get(ctx, "/"+accountID, params, &resp); err != nil {
		return "", fmt.Errorf("failed to fetch username for %s: %w", accountID, err)
	}
	return resp.Username, nil
}

func (ig *IgImpl) Media(ctx context.Context, accountID, token string, maxItems int) ([]instagram.Media, error) {
	return ig.collection(ctx, "/"+accountID+"/media", token, maxItems)
}

func (ig *IgImpl) TaggedMedia(ctx context.Context, accountID, token string, maxItems int) ([]instagram.Media, error) {
	return ig.collection(ctx, "/"+accountID+"/tags", token, maxItems)
}

func (ig *IgImpl) collection(ctx context.Context, path, token string, maxItems int) ([]instagram.Media, error) {
	params := tokenParams(token)
	params.Set("fields", mediaFields)

	items, err := fetchAllPages[instagram.Media](ctx, ig.graph, path, params, maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	ig.logger.Debug("Fetched collection", "path", path, "count", len(items))
	return items, nil
}

func (ig *IgImpl) Insights(ctx context.Context, mediaID, token string) (instagram.Insights, error) {
	params := tokenParams(token)
	params.Set("metric", "reach,saved")

	var resp struct {
		Data []insightMetric `json:"data"`
	}
	if err := ig.graph.Get(ctx, "/"+mediaID+"/insights", params, &resp); err != nil {
		return instagram.Insights{}, fmt.Errorf("failed to fetch insights for %s: %w", mediaID, err)
	}

	var insights instagram.Insights
	for _, m := range resp.Data {
		if len(m.Values) == 0 {
			continue
		}
		v := m.Values[0].Value
		switch m.Name {
		case "reach":
			insights.Reach = &v
		case "saved":
			insights.Saved = &v
		}
	}
	return insights, nil
}

func (ig *IgImpl) Children(ctx context.Context, mediaID, token string) ([]instagram.Media, error) {
	params := tokenParams(token)
	params.Set("fields", "id,media_type,media_url,thumbnail_url")

	var resp page[instagram.Media]
	if err := ig.graph.Get(ctx, "/"+mediaID+"/children", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch children of %s: %w", mediaID, err)
	}
	return resp.Data, nil
}
