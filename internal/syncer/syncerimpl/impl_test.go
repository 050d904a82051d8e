package syncerimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/graphapi"
	"github.com/orgball2608/insta-shop-sync/internal/instagram"
	mock_instagram "github.com/orgball2608/insta-shop-sync/internal/instagram/mocks"
	"github.com/orgball2608/insta-shop-sync/internal/ratelimit"
	mock_account "github.com/orgball2608/insta-shop-sync/internal/repositories/account/mocks"
	mock_post "github.com/orgball2608/insta-shop-sync/internal/repositories/post/mocks"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
	mock_telegram "github.com/orgball2608/insta-shop-sync/internal/telegram/mocks"
	mock_token "github.com/orgball2608/insta-shop-sync/internal/token/mocks"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ig       *mock_instagram.MockClient
	tokens   *mock_token.MockManager
	accounts *mock_account.MockRepository
	posts    *mock_post.MockRepository
	telegram *mock_telegram.MockClient
	syncer   *SyncerImpl
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Instagram.MaxPosts = 500
	cfg.Sync.Concurrency = 10
	cfg.Sync.InsightConcurrency = 5
	cfg.Sync.DisplayLimit = 200

	f := &fixture{
		ig:       mock_instagram.NewMockClient(ctrl),
		tokens:   mock_token.NewMockManager(ctrl),
		accounts: mock_account.NewMockRepository(ctrl),
		posts:    mock_post.NewMockRepository(ctrl),
		telegram: mock_telegram.NewMockClient(ctrl),
	}
	f.syncer = New(Opts{
		Instagram:   f.ig,
		Tokens:      f.tokens,
		AccountRepo: f.accounts,
		PostRepo:    f.posts,
		Telegram:    f.telegram,
		RateLimiter: ratelimit.NewLimiter(ratelimit.NewMemoryStore(), nil, logger.NewNop()),
		Logger:      logger.NewNop(),
		Config:      cfg,
	})

	f.tokens.EXPECT().
		MaybeRefresh(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc domain.Account) domain.Account { return acc }).
		AnyTimes()
	return f
}

// healthyAccount wires an account whose upstream returns the given published media.
func (f *fixture) healthyAccount(acc domain.Account, igID string, published []instagram.Media) {
	f.ig.EXPECT().BusinessAccountID(gomock.Any(), acc.AccessToken).Return(igID, nil)
	f.ig.EXPECT().Username(gomock.Any(), igID, acc.AccessToken).Return(acc.Username, nil)
	f.ig.EXPECT().Media(gomock.Any(), igID, acc.AccessToken, 500).Return(published, nil)
	f.ig.EXPECT().TaggedMedia(gomock.Any(), igID, acc.AccessToken, 500).Return([]instagram.Media{}, nil)
	for _, m := range published {
		f.ig.EXPECT().Insights(gomock.Any(), m.ID, acc.AccessToken).Return(instagram.Insights{}, nil)
	}
}

func intPtr(v int) *int { return &v }

func TestSyncAll_OneAccountUnauthorized(t *testing.T) {
	f := newFixture(t)
	accounts := []domain.Account{
		{ID: 1, Shop: "acme", Username: "one", AccessToken: "tok1", Active: true},
		{ID: 2, Shop: "acme", Username: "two", AccessToken: "tok2", Active: true},
		{ID: 3, Shop: "acme", Username: "three", AccessToken: "tok3", Active: true},
	}

	f.healthyAccount(accounts[0], "ig1", []instagram.Media{{ID: "a1", MediaURL: "u"}, {ID: "a2", MediaURL: "u"}})
	f.healthyAccount(accounts[2], "ig3", []instagram.Media{{ID: "c1", MediaURL: "u"}})
	f.ig.EXPECT().
		BusinessAccountID(gomock.Any(), "tok2").
		Return("", &graphapi.UpstreamError{StatusCode: 401, Message: "Error validating access token"})
	f.accounts.EXPECT().Deactivate(gomock.Any(), int64(2)).Return(nil)
	f.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	res := f.syncer.SyncAll(context.Background(), accounts)

	ids := make([]string, 0, len(res.Posts))
	for _, p := range res.Posts {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"a1", "a2", "c1"}, ids)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, int64(2), res.Errors[0].ConfigID)
	assert.Equal(t, "two", res.Errors[0].Username)
	assert.Contains(t, res.Errors[0].Error, "401")
}

func TestSyncAll_DeadlineSettlesSlowAccount(t *testing.T) {
	f := newFixture(t)
	f.syncer.Config.Sync.Timeout = 200 * time.Millisecond
	healthy := domain.Account{ID: 1, Shop: "acme", Username: "one", AccessToken: "tok1", Active: true}
	slow := domain.Account{ID: 2, Shop: "acme", Username: "two", AccessToken: "tok2", Active: true}

	f.healthyAccount(healthy, "ig1", []instagram.Media{{ID: "a1", MediaURL: "u"}})
	f.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.ig.EXPECT().BusinessAccountID(gomock.Any(), "tok2").DoAndReturn(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	start := time.Now()
	res := f.syncer.SyncAll(context.Background(), []domain.Account{healthy, slow})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "a1", res.Posts[0].ID)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, int64(2), res.Errors[0].ConfigID)
	assert.Contains(t, res.Errors[0].Error, context.DeadlineExceeded.Error())
}

func TestSyncAll_PanicIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	tokens := mock_token.NewMockManager(ctrl)
	f.syncer.Tokens = tokens
	tokens.EXPECT().MaybeRefresh(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, domain.Account) domain.Account {
		panic("boom")
	})

	res := f.syncer.SyncAll(context.Background(), []domain.Account{{ID: 9, Username: "nine"}})

	assert.Empty(t, res.Posts)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Error, "boom")
}

func TestSyncAll_Empty(t *testing.T) {
	f := newFixture(t)

	res := f.syncer.SyncAll(context.Background(), nil)

	assert.NotNil(t, res.Posts)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Posts)
	assert.Empty(t, res.Errors)
}

func TestSyncAccount_EnrichesAndUpsertsInOrder(t *testing.T) {
	f := newFixture(t)
	acc := domain.Account{ID: 1, Shop: "acme", Username: "acme", AccessToken: "tok"}

	f.ig.EXPECT().BusinessAccountID(gomock.Any(), "tok").Return("ig1", nil)
	f.ig.EXPECT().Username(gomock.Any(), "ig1", "tok").Return("acme", nil)
	f.ig.EXPECT().Media(gomock.Any(), "ig1", "tok", 500).Return([]instagram.Media{
		{ID: "1", Caption: "New #Mugs #sale", MediaType: "IMAGE", MediaURL: "https://cdn/1.jpg", Timestamp: "2026-10-01T10:00:00+0000", LikeCount: 4},
		{ID: "2", MediaType: "VIDEO", ThumbnailURL: "https://cdn/2-thumb.jpg"},
		{ID: "3", MediaType: "CAROUSEL_ALBUM"},
	}, nil)
	f.ig.EXPECT().TaggedMedia(gomock.Any(), "ig1", "tok", 500).Return([]instagram.Media{
		{ID: "2", Username: "fan", MediaType: "VIDEO", MediaURL: "https://cdn/2.mp4"},
	}, nil)
	f.ig.EXPECT().Insights(gomock.Any(), "1", "tok").Return(instagram.Insights{Reach: intPtr(10), Saved: intPtr(2)}, nil)
	f.ig.EXPECT().Insights(gomock.Any(), "2", "tok").Return(instagram.Insights{}, errors.New("insights unavailable")).Times(2)
	f.ig.EXPECT().Insights(gomock.Any(), "3", "tok").Return(instagram.Insights{Reach: intPtr(5)}, nil)
	f.ig.EXPECT().Children(gomock.Any(), "3", "tok").Return([]instagram.Media{{ID: "3a", MediaURL: "https://cdn/3a.jpg"}}, nil)

	var (
		mu      sync.Mutex
		written []domain.Post
	)
	f.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Post) error {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, p)
		return nil
	}).Times(4)

	posts, err := f.syncer.SyncAccount(context.Background(), acc)

	require.NoError(t, err)
	require.Len(t, posts, 4)
	require.Len(t, written, 4)

	assert.Equal(t, []string{"1", "2", "3", "2"}, []string{written[0].ID, written[1].ID, written[2].ID, written[3].ID})
	assert.False(t, written[1].IsTagged)
	assert.True(t, written[3].IsTagged, "tagged origin is written last")
	assert.Equal(t, "fan", written[3].OwnerUsername)
	assert.Equal(t, "acme", written[3].Username)

	first := posts[0]
	assert.Equal(t, int64(1), first.AccountID)
	assert.Equal(t, "acme", first.Shop)
	require.NotNil(t, first.Reach)
	assert.Equal(t, 10, *first.Reach)
	require.NotNil(t, first.Hashtags)
	assert.Equal(t, "mugs,sale", *first.Hashtags)
	assert.Equal(t, 2026, first.Timestamp.Year())

	assert.Nil(t, posts[1].Reach, "failed insights become null")
	assert.Nil(t, posts[1].Saved)
	assert.Nil(t, posts[1].Hashtags)
	assert.Equal(t, "https://cdn/2-thumb.jpg", posts[1].MediaURL)
	assert.Equal(t, "https://cdn/3a.jpg", posts[2].MediaURL)
	assert.Nil(t, posts[0].Impressions)
}

func TestSyncAccount_NoBusinessAccount(t *testing.T) {
	f := newFixture(t)
	f.ig.EXPECT().BusinessAccountID(gomock.Any(), "tok").Return("", nil)

	posts, err := f.syncer.SyncAccount(context.Background(), domain.Account{ID: 1, AccessToken: "tok"})

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSyncAccount_CorrectsUsername(t *testing.T) {
	f := newFixture(t)
	acc := domain.Account{ID: 4, Shop: "acme", Username: "old.handle", AccessToken: "tok"}

	f.ig.EXPECT().BusinessAccountID(gomock.Any(), "tok").Return("ig4", nil)
	f.ig.EXPECT().Username(gomock.Any(), "ig4", "tok").Return("new.handle", nil)
	f.accounts.EXPECT().UpdateUsername(gomock.Any(), int64(4), "new.handle").Return(nil)
	f.ig.EXPECT().Media(gomock.Any(), "ig4", "tok", 500).Return([]instagram.Media{{ID: "x", MediaURL: "u"}}, nil)
	f.ig.EXPECT().TaggedMedia(gomock.Any(), "ig4", "tok", 500).Return(nil, nil)
	f.ig.EXPECT().Insights(gomock.Any(), "x", "tok").Return(instagram.Insights{}, nil)
	f.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	posts, err := f.syncer.SyncAccount(context.Background(), acc)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "new.handle", posts[0].Username)
	assert.Equal(t, "new.handle", posts[0].OwnerUsername)
}

func TestSyncAccount_UpstreamFailureKeepsAccountActive(t *testing.T) {
	f := newFixture(t)
	unavailable := &graphapi.UpstreamError{StatusCode: 503}

	f.ig.EXPECT().BusinessAccountID(gomock.Any(), "tok").Return("ig1", nil)
	f.ig.EXPECT().Username(gomock.Any(), "ig1", "tok").Return("acme", nil)
	f.ig.EXPECT().Media(gomock.Any(), "ig1", "tok", 500).Return(nil, unavailable)
	f.ig.EXPECT().TaggedMedia(gomock.Any(), "ig1", "tok", 500).Return(nil, nil).AnyTimes()

	posts, err := f.syncer.SyncAccount(context.Background(), domain.Account{ID: 1, Username: "acme", AccessToken: "tok"})

	assert.Nil(t, posts)
	assert.ErrorIs(t, err, pkgerrors.ErrUpstream)
	assert.False(t, pkgerrors.IsAuthExpired(err))
}

func TestSyncAccount_StoreFailure(t *testing.T) {
	f := newFixture(t)
	acc := domain.Account{ID: 1, Username: "acme", AccessToken: "tok"}
	f.healthyAccount(acc, "ig1", []instagram.Media{{ID: "1", MediaURL: "u"}})
	f.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(pkgerrors.Database(errors.New("conn reset"), "failed to upsert post 1"))

	_, err := f.syncer.SyncAccount(context.Background(), acc)

	assert.True(t, pkgerrors.IsDatabase(err))
}

func TestSyncShop_ReadsBackActiveUsernames(t *testing.T) {
	f := newFixture(t)
	one := domain.Account{ID: 1, Shop: "acme", Username: "one", AccessToken: "tok1", Active: true}
	two := domain.Account{ID: 2, Shop: "acme", Username: "two", AccessToken: "tok2", Active: true}

	gomock.InOrder(
		f.accounts.EXPECT().ListActiveByShop(gomock.Any(), "acme").Return([]domain.Account{one, two}, nil),
		f.accounts.EXPECT().ListActiveByShop(gomock.Any(), "acme").Return([]domain.Account{one}, nil),
	)
	f.healthyAccount(one, "ig1", []instagram.Media{{ID: "p1", MediaURL: "u"}})
	f.ig.EXPECT().BusinessAccountID(gomock.Any(), "tok2").Return("", &graphapi.UpstreamError{StatusCode: 400, Code: 190})
	f.accounts.EXPECT().Deactivate(gomock.Any(), int64(2)).Return(nil)
	f.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.posts.EXPECT().
		ListByShopUsernames(gomock.Any(), "acme", []string{"one"}, 200).
		Return([]domain.Post{{ID: "p1", Username: "one"}}, nil)

	res := f.syncer.SyncShop(context.Background(), "acme")

	assert.True(t, res.Configured)
	assert.Equal(t, 1, res.Synced)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "p1", res.Posts[0].ID)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, int64(2), res.Errors[0].ConfigID)
}

func TestSyncShop_StoreUnreachable(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().ListActiveByShop(gomock.Any(), "acme").Return(nil, pkgerrors.Database(errors.New("dial tcp"), "failed to list accounts"))

	res := f.syncer.SyncShop(context.Background(), "acme")

	assert.Equal(t, syncer.ShopResult{Posts: []domain.Post{}, Errors: []domain.SyncError{}}, res)
}

func TestRefreshTokens_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	tokens := mock_token.NewMockManager(ctrl)
	f.syncer.Tokens = tokens

	earlier := fixedTime.Add(-50 * 24 * time.Hour)
	accounts := []domain.Account{
		{ID: 1},
		{ID: 2},
		{ID: 3, LastRefreshedAt: &earlier},
		{ID: 4, LastRefreshedAt: &earlier},
	}
	f.accounts.EXPECT().ListActive(gomock.Any()).Return(accounts, nil)
	tokens.EXPECT().MaybeRefresh(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, acc domain.Account) domain.Account {
		switch acc.ID {
		case 1, 4:
			now := fixedTime
			acc.LastRefreshedAt = &now
		case 2:
			acc.RefreshFailed = true
		case 3:
			// Same instant behind a different pointer is not a refresh.
			same := *acc.LastRefreshedAt
			acc.LastRefreshedAt = &same
		}
		return acc
	}).Times(4)

	refreshed, failed, err := f.syncer.RefreshTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
	assert.Equal(t, 1, failed)
}

func TestSyncFailureAlert(t *testing.T) {
	msg := syncFailureAlert("acme.myshopify.com", syncer.ShopResult{
		Synced: 1200,
		Errors: []domain.SyncError{{ConfigID: 2, Username: "two", Error: "graph api status 401"}},
	})

	assert.Contains(t, msg, "*Instagram sync failed*")
	assert.Contains(t, msg, `acme\.myshopify\.com`)
	assert.Contains(t, msg, "posts synced: 1,200")
	assert.Contains(t, msg, `\- @two \(\#2\): graph api status 401`)
}

var fixedTime = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func scheduleConfig(f *fixture) {
	f.syncer.Config.Sync.Schedule = "0 */6 * * *"
	f.syncer.Config.Sync.Timezone = "Europe/Berlin"
	f.syncer.Config.TokenRefresh.Schedule = "0 3 * * *"
	f.syncer.Config.RateLimit.SweepInterval = time.Minute
}

func TestNewScheduler_RegistersJobs(t *testing.T) {
	f := newFixture(t)
	scheduleConfig(f)

	scheduler, err := f.syncer.newScheduler(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = scheduler.Shutdown() })

	names := make([]string, 0)
	for _, job := range scheduler.Jobs() {
		names = append(names, job.Name())
	}
	assert.ElementsMatch(t, []string{shopSyncJobName, tokenRefreshJobName, sweepJobName}, names)
}

func TestNewScheduler_SweepDisabled(t *testing.T) {
	f := newFixture(t)
	scheduleConfig(f)
	f.syncer.Config.RateLimit.SweepInterval = 0

	scheduler, err := f.syncer.newScheduler(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = scheduler.Shutdown() })

	assert.Len(t, scheduler.Jobs(), 2)
}

func TestSchedule_InvalidCron(t *testing.T) {
	f := newFixture(t)
	scheduleConfig(f)
	f.syncer.Config.Sync.Schedule = "every now and then"

	err := f.syncer.Schedule(context.Background())

	assert.ErrorContains(t, err, "failed to schedule shop sync")
}

func TestSchedule_SweepsUntilCancelled(t *testing.T) {
	f := newFixture(t)
	scheduleConfig(f)
	f.syncer.Config.RateLimit.SweepInterval = 20 * time.Millisecond
	store := ratelimit.NewMemoryStore()
	f.syncer.RateLimiter = ratelimit.NewLimiter(store, nil, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.syncer.RateLimiter.Check(ctx, "connect:acme", 5, time.Millisecond)
	require.NoError(t, f.syncer.Schedule(ctx))

	assert.Eventually(t, func() bool { return store.Len() == 0 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	f.syncer.RateLimiter.Check(context.Background(), "connect:acme", 5, 50*time.Millisecond)

	assert.Never(t, func() bool { return store.Len() == 0 }, 300*time.Millisecond, 20*time.Millisecond)
}
