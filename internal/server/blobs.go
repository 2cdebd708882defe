package server

import (
	"errors"
	"sync"

	"ai-pictionary/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// blobStore keeps generated images. Bytes are written through to Postgres
// when a connection is configured and cached in memory either way; reads
// fall back to the database so a restarted server can still serve old blobs.
type blobStore struct {
	db    *gorm.DB
	mu    sync.Mutex
	blobs map[string][]byte
}

func newBlobStore(conn *gorm.DB) *blobStore {
	return &blobStore{
		db:    conn,
		blobs: make(map[string][]byte),
	}
}

func (b *blobStore) Store(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("no blob data")
	}
	id := uuid.NewString()
	if b.db != nil {
		record := db.Blob{
			ID:          id,
			Data:        data,
			ContentType: contentType,
		}
		if err := b.db.Create(&record).Error; err != nil {
			return "", err
		}
	}
	b.mu.Lock()
	b.blobs[id] = data
	b.mu.Unlock()
	return id, nil
}

func (b *blobStore) Get(id string) ([]byte, string, error) {
	b.mu.Lock()
	data, ok := b.blobs[id]
	b.mu.Unlock()
	if ok {
		return data, "image/png", nil
	}
	if b.db == nil {
		return nil, "", errors.New("blob not found")
	}
	var record db.Blob
	if err := b.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, "", errors.New("blob not found")
	}
	b.mu.Lock()
	b.blobs[id] = record.Data
	b.mu.Unlock()
	return record.Data, record.ContentType, nil
}

// URL resolves a blob identifier to a servable URL. A missing blob here is
// stored-data corruption, not a normal flow, so it is an error rather than
// a silent miss.
func (b *blobStore) URL(id string) (string, error) {
	if id == "" {
		return "", errors.New("no blob id")
	}
	if _, _, err := b.Get(id); err != nil {
		return "", errors.New("failed to resolve blob URL: " + id)
	}
	return "/blobs/" + id, nil
}
