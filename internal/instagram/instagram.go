package instagram

import (
	"context"
)

// DefaultMaxItems caps a collection walk when the caller does not choose a limit.
const DefaultMaxItems = 500

// Media is one item of a media, tags or children collection.
type Media struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	Permalink     string `json:"permalink"`
	Timestamp     string `json:"timestamp"`
	Username      string `json:"username"`
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
}

// Insights holds the engagement metrics of a single media item.
// A nil field means the metric was not returned.
type Insights struct {
	Reach *int
	Saved *int
}

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go
type Client interface {
	// BusinessAccountID returns the Instagram business account bound to the first
	// linked page that has one, or "" when no page exposes a binding.
	BusinessAccountID(ctx context.Context, token string) (string, error)

	Username(ctx context.Context, accountID, token string) (string, error)

	// Media walks the published media collection up to maxItems.
	// A negative maxItems means DefaultMaxItems.
	Media(ctx context.Context, accountID, token string, maxItems int) ([]Media, error)

	// TaggedMedia walks the media the account is tagged in up to maxItems.
	TaggedMedia(ctx context.Context, accountID, token string, maxItems int) ([]Media, error)

	Insights(ctx context.Context, mediaID, token string) (Insights, error)

	// Children lists the items of a carousel album.
	Children(ctx context.Context, mediaID, token string) ([]Media, error)
}
