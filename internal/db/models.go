package db

import (
	"time"

	"gorm.io/datatypes"
)

// Game mirrors the in-memory game document. The list-shaped fields
// (history, guesses, scores) and the optional current round are stored as
// JSONB so a game is always written back as a single row.
type Game struct {
	ID             string         `gorm:"primaryKey;size:36"`
	CreatedBy      string         `gorm:"size:36;index;not null"`
	Theme          string         `gorm:"size:140;not null;default:''"`
	RevealAnswer   bool           `gorm:"not null;default:false"`
	Winner         string         `gorm:"size:36;not null;default:''"`
	CurrentRound   datatypes.JSON `gorm:"type:jsonb"`
	AnswersHistory datatypes.JSON `gorm:"type:jsonb;not null"`
	Guesses        datatypes.JSON `gorm:"type:jsonb;not null"`
	Scores         datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

type User struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"size:36;index"`
	Flash     string    `gorm:"size:280"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Blob holds generated round images.
type Blob struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Data        []byte    `gorm:"type:bytea;not null"`
	ContentType string    `gorm:"size:64;not null;default:'image/png'"`
	CreatedAt   time.Time `gorm:"not null"`
}

// Image is the public gallery archive: one immutable row per resolved round.
type Image struct {
	ID        string    `gorm:"primaryKey;size:36"`
	GameID    string    `gorm:"size:36;index;not null"`
	BlobID    string    `gorm:"size:36;not null"`
	Theme     string    `gorm:"size:140;not null"`
	Answer    string    `gorm:"size:140;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	GameID    string         `gorm:"size:36;index;not null"`
	UserID    string         `gorm:"size:36;index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
