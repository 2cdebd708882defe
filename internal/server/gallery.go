package server

import (
	"errors"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"ai-pictionary/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage is one page entry of the public gallery feed.
type GalleryImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"image"`
	Theme     string    `json:"theme"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryPage is a cursor-paginated slice of the archive, newest first.
type GalleryPage struct {
	Images     []GalleryImage `json:"images"`
	HasMore    bool           `json:"has_more"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// imageArchive records one immutable row per resolved round. Entries are
// written through to Postgres when configured and kept in memory otherwise.
type imageArchive struct {
	db      *gorm.DB
	mu      sync.Mutex
	entries []ArchivedImage
}

func newImageArchive(conn *gorm.DB) *imageArchive {
	return &imageArchive{db: conn}
}

func (a *imageArchive) Add(entry ArchivedImage) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = timeNowUTC()
	}
	if a.db != nil {
		record := db.Image{
			ID:        entry.ID,
			GameID:    entry.GameID,
			BlobID:    entry.BlobID,
			Theme:     entry.Theme,
			Answer:    entry.Answer,
			CreatedAt: entry.CreatedAt,
		}
		if err := a.db.Create(&record).Error; err != nil {
			return err
		}
	}
	a.mu.Lock()
	a.entries = append(a.entries, entry)
	a.mu.Unlock()
	return nil
}

// List returns up to limit archive entries older than the cursor, newest
// first. It reads limit+1 rows to decide hasMore; the next cursor is the
// creation time of the last returned entry, so repeated calls walk the
// whole archive exactly once.
func (a *imageArchive) List(limit int, cursor time.Time) ([]ArchivedImage, bool, error) {
	if limit <= 0 {
		limit = 1
	}
	if a.db != nil {
		query := a.db.Model(&db.Image{}).Order("created_at DESC")
		if !cursor.IsZero() {
			query = query.Where("created_at < ?", cursor)
		}
		var records []db.Image
		if err := query.Limit(limit + 1).Find(&records).Error; err != nil {
			return nil, false, err
		}
		hasMore := len(records) > limit
		if hasMore {
			records = records[:limit]
		}
		entries := make([]ArchivedImage, 0, len(records))
		for _, record := range records {
			entries = append(entries, ArchivedImage{
				ID:        record.ID,
				GameID:    record.GameID,
				BlobID:    record.BlobID,
				Theme:     record.Theme,
				Answer:    record.Answer,
				CreatedAt: record.CreatedAt,
			})
		}
		return entries, hasMore, nil
	}

	a.mu.Lock()
	entries := append([]ArchivedImage(nil), a.entries...)
	a.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	filtered := entries[:0]
	for _, entry := range entries {
		if cursor.IsZero() || entry.CreatedAt.Before(cursor) {
			filtered = append(filtered, entry)
		}
	}
	hasMore := len(filtered) > limit
	if hasMore {
		filtered = filtered[:limit]
	}
	return append([]ArchivedImage(nil), filtered...), hasMore, nil
}

// archiveRound writes the just-resolved round into the gallery. Called from
// exactly one place per round (the mutation that flipped RevealAnswer), so
// each resolved round archives once.
func (s *Server) archiveRound(game *Game) {
	if game.CurrentRound == nil {
		return
	}
	entry := ArchivedImage{
		GameID: game.ID,
		BlobID: game.CurrentRound.BlobID,
		Theme:  game.CurrentRound.Theme,
		Answer: game.CurrentRound.AnswerWord,
	}
	if err := s.archive.Add(entry); err != nil {
		log.Printf("failed to archive round game_id=%s: %v", game.ID, err)
	}
}

// GalleryPage resolves blob URLs for a page of the archive. A blob that no
// longer resolves is surfaced as an error: the archive row exists, so the
// data is corrupt rather than merely missing.
func (s *Server) GalleryPage(limit int, cursor string) (*GalleryPage, error) {
	if limit <= 0 {
		limit = s.cfg.GalleryPageSize
	}
	cursorTime, err := decodeGalleryCursor(cursor)
	if err != nil {
		return nil, err
	}
	entries, hasMore, err := s.archive.List(limit, cursorTime)
	if err != nil {
		return nil, err
	}

	page := &GalleryPage{Images: make([]GalleryImage, 0, len(entries)), HasMore: hasMore}
	for _, entry := range entries {
		url, err := s.blobs.URL(entry.BlobID)
		if err != nil {
			return nil, err
		}
		page.Images = append(page.Images, GalleryImage{
			ID:        entry.ID,
			URL:       url,
			Theme:     entry.Theme,
			Answer:    entry.Answer,
			CreatedAt: entry.CreatedAt,
		})
	}
	if hasMore && len(page.Images) > 0 {
		page.NextCursor = encodeGalleryCursor(page.Images[len(page.Images)-1].CreatedAt)
	}
	return page, nil
}

// The cursor is the creation timestamp of the last entry, in nanoseconds.
// Opaque to clients, monotonic with creation order.
func encodeGalleryCursor(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}

func decodeGalleryCursor(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("invalid cursor")
	}
	return time.Unix(0, nanos).UTC(), nil
}
