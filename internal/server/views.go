package server

import (
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
)

type postView struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	OwnerUsername string     `json:"ownerUsername"`
	IsTagged      bool       `json:"isTagged"`
	Caption       string     `json:"caption"`
	MediaURL      string     `json:"mediaUrl"`
	Permalink     string     `json:"permalink"`
	Timestamp     *time.Time `json:"timestamp"`
	MediaType     string     `json:"mediaType"`
	LikeCount     int        `json:"likeCount"`
	CommentsCount int        `json:"commentsCount"`
	Impressions   *int       `json:"impressions"`
	Reach         *int       `json:"reach"`
	Saved         *int       `json:"saved"`
	Hashtags      *string    `json:"hashtags"`
}

type shopView struct {
	Configured bool               `json:"configured"`
	Posts      []postView         `json:"posts"`
	Errors     []domain.SyncError `json:"errors"`
	Synced     int                `json:"synced"`
}

func newShopView(res syncer.ShopResult) shopView {
	view := shopView{
		Configured: res.Configured,
		Posts:      make([]postView, 0, len(res.Posts)),
		Errors:     res.Errors,
		Synced:     res.Synced,
	}
	if view.Errors == nil {
		view.Errors = []domain.SyncError{}
	}
	for _, p := range res.Posts {
		view.Posts = append(view.Posts, newPostView(p))
	}
	return view
}

func newPostView(p domain.Post) postView {
	v := postView{
		ID:            p.ID,
		Username:      p.Username,
		OwnerUsername: p.OwnerUsername,
		IsTagged:      p.IsTagged,
		Caption:       p.Caption,
		MediaURL:      p.MediaURL,
		Permalink:     p.Permalink,
		MediaType:     p.MediaType,
		LikeCount:     p.LikeCount,
		CommentsCount: p.CommentsCount,
		Impressions:   p.Impressions,
		Reach:         p.Reach,
		Saved:         p.Saved,
		Hashtags:      p.Hashtags,
	}
	if !p.Timestamp.IsZero() {
		ts := p.Timestamp
		v.Timestamp = &ts
	}
	return v
}

type accountView struct {
	ID             int64      `json:"id"`
	Shop           string     `json:"shop"`
	Username       string     `json:"username"`
	Active         bool       `json:"active"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt"`
}

func newAccountView(acc domain.Account) accountView {
	return accountView{
		ID:             acc.ID,
		Shop:           acc.Shop,
		Username:       acc.Username,
		Active:         acc.Active,
		TokenExpiresAt: acc.TokenExpiresAt,
	}
}
