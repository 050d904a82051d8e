package domain

import "time"

// Post is a snapshot of one upstream media item, keyed by its external id.
type Post struct {
	ID            string // external id from Instagram
	Shop          string
	Username      string // account the post was synced for
	OwnerUsername string // author of the media, differs for tagged posts
	IsTagged      bool
	Caption       string
	MediaURL      string
	Permalink     string
	Timestamp     time.Time
	MediaType     string
	LikeCount     int
	CommentsCount int
	Impressions   *int
	Reach         *int
	Saved         *int
	Hashtags      *string
	UpdatedAt     time.Time
}

// EnrichedPost is a synced post annotated with the account it came from.
type EnrichedPost struct {
	Post
	AccountID int64
}

// SyncError describes one account whose sync failed.
type SyncError struct {
	ConfigID int64  `json:"configId"`
	Username string `json:"username"`
	Error    string `json:"error"`
}
