package syncerimpl

import (
	"context"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/instagram"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/orgball2608/insta-shop-sync/pkg/formatter"
	"golang.org/x/sync/errgroup"
)

const (
	mediaTypeCarousel = "CAROUSEL_ALBUM"

	graphTimeLayout = "2006-01-02T15:04:05-0700"
)

type fetchedMedia struct {
	instagram.Media
	tagged   bool
	insights instagram.Insights
}

func (s *SyncerImpl) SyncAccount(ctx context.Context, acc domain.Account) ([]domain.EnrichedPost, error) {
	acc = s.Tokens.MaybeRefresh(ctx, acc)
	if acc.RefreshFailed {
		s.Logger.Warn("Syncing with stale token", "account_id", acc.ID, "reason", acc.RefreshError)
	}

	igID, err := s.Instagram.BusinessAccountID(ctx, acc.AccessToken)
	if err != nil {
		return nil, s.fail(ctx, acc, err)
	}
	if igID == "" {
		s.Logger.Info("No business account linked, nothing to sync", "account_id", acc.ID, "username", acc.Username)
		return []domain.EnrichedPost{}, nil
	}

	acc, err = s.canonicalizeUsername(ctx, acc, igID)
	if err != nil {
		return nil, s.fail(ctx, acc, err)
	}

	items, err := s.fetchMedia(ctx, acc, igID)
	if err != nil {
		return nil, s.fail(ctx, acc, err)
	}

	s.enrich(ctx, acc, items)

	posts := make([]domain.EnrichedPost, 0, len(items))
	for _, item := range items {
		p := toPost(acc, item)
		// Published items are written first so an id present in both collections ends up tagged.
		if err := s.PostRepo.Upsert(ctx, p); err != nil {
			return nil, s.fail(ctx, acc, err)
		}
		posts = append(posts, domain.EnrichedPost{Post: p, AccountID: acc.ID})
	}

	s.Logger.Info("Account synced", "account_id", acc.ID, "username", acc.Username, "posts", len(posts))
	return posts, nil
}

// fail deactivates the account on an auth failure and returns err unchanged.
func (s *SyncerImpl) fail(ctx context.Context, acc domain.Account, err error) error {
	if !pkgerrors.IsAuthExpired(err) {
		s.Logger.Error("Account sync failed", "account_id", acc.ID, "username", acc.Username, "error", err)
		return err
	}

	s.Logger.Warn("Authorization expired, deactivating account", "account_id", acc.ID, "username", acc.Username, "error", err)
	if derr := s.AccountRepo.Deactivate(context.WithoutCancel(ctx), acc.ID); derr != nil {
		s.Logger.Error("Failed to deactivate account", "account_id", acc.ID, "error", derr)
	}
	return err
}

func (s *SyncerImpl) canonicalizeUsername(ctx context.Context, acc domain.Account, igID string) (domain.Account, error) {
	username, err := s.Instagram.Username(ctx, igID, acc.AccessToken)
	if err != nil {
		return acc, err
	}
	if username == "" || username == acc.Username {
		return acc, nil
	}

	if err := s.AccountRepo.UpdateUsername(ctx, acc.ID, username); err != nil {
		s.Logger.Warn("Failed to store corrected username, keeping old one",
			"account_id", acc.ID, "stored", acc.Username, "upstream", username, "error", err)
		return acc, nil
	}

	s.Logger.Info("Username changed upstream", "account_id", acc.ID, "from", acc.Username, "to", username)
	acc.Username = username
	return acc, nil
}

// fetchMedia walks the published and tagged collections concurrently.
// Published items come first in the result.
func (s *SyncerImpl) fetchMedia(ctx context.Context, acc domain.Account, igID string) ([]fetchedMedia, error) {
	var published, tagged []instagram.Media

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		published, err = s.Instagram.Media(gctx, igID, acc.AccessToken, s.maxPosts())
		return err
	})
	g.Go(func() error {
		var err error
		tagged, err = s.Instagram.TaggedMedia(gctx, igID, acc.AccessToken, s.maxPosts())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]fetchedMedia, 0, len(published)+len(tagged))
	for _, m := range published {
		items = append(items, fetchedMedia{Media: m})
	}
	for _, m := range tagged {
		items = append(items, fetchedMedia{Media: m, tagged: true})
	}
	return items, nil
}

// enrich fills insights and missing media URLs. Failures leave the fields empty.
func (s *SyncerImpl) enrich(ctx context.Context, acc domain.Account, items []fetchedMedia) {
	var g errgroup.Group
	g.SetLimit(s.insightConcurrency())

	for i := range items {
		item := &items[i]
		g.Go(func() error {
			insights, err := s.Instagram.Insights(ctx, item.ID, acc.AccessToken)
			if err != nil {
				s.Logger.Debug("Insights unavailable", "media_id", item.ID, "error", err)
			} else {
				item.insights = insights
			}

			if item.MediaURL == "" {
				item.MediaURL = s.fallbackMediaURL(ctx, acc, item.Media)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (s *SyncerImpl) fallbackMediaURL(ctx context.Context, acc domain.Account, m instagram.Media) string {
	if m.MediaType == mediaTypeCarousel {
		children, err := s.Instagram.Children(ctx, m.ID, acc.AccessToken)
		if err != nil {
			s.Logger.Debug("Carousel children unavailable", "media_id", m.ID, "error", err)
		}
		for _, c := range children {
			if c.MediaURL != "" {
				return c.MediaURL
			}
			if c.ThumbnailURL != "" {
				return c.ThumbnailURL
			}
		}
	}
	// Videos and albums without a playable URL fall back to their cover image.
	return m.ThumbnailURL
}

func toPost(acc domain.Account, item fetchedMedia) domain.Post {
	owner := item.Username
	if owner == "" && !item.tagged {
		owner = acc.Username
	}

	return domain.Post{
		ID:            item.ID,
		Shop:          acc.Shop,
		Username:      acc.Username,
		OwnerUsername: owner,
		IsTagged:      item.tagged,
		Caption:       item.Caption,
		MediaURL:      item.MediaURL,
		Permalink:     item.Permalink,
		Timestamp:     parseTimestamp(item.Timestamp),
		MediaType:     item.MediaType,
		LikeCount:     item.LikeCount,
		CommentsCount: item.CommentsCount,
		Reach:         item.insights.Reach,
		Saved:         item.insights.Saved,
		Hashtags:      formatter.ExtractHashtags(item.Caption),
	}
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(graphTimeLayout, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
