package server

import (
	"errors"
	"strings"
	"sync"

	"ai-pictionary/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRegistry maps opaque user identifiers to display names. Sign-in is by
// name: an existing name claims the same user, a new name creates one.
type userRegistry struct {
	db      *gorm.DB
	mu      sync.Mutex
	byID    map[string]User
	byName  map[string]string
}

func newUserRegistry(conn *gorm.DB) *userRegistry {
	return &userRegistry{
		db:     conn,
		byID:   make(map[string]User),
		byName: make(map[string]string),
	}
}

func (u *userRegistry) Ensure(name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, errors.New("name is required")
	}
	key := strings.ToLower(name)

	u.mu.Lock()
	if id, ok := u.byName[key]; ok {
		user := u.byID[id]
		u.mu.Unlock()
		return user, nil
	}
	u.mu.Unlock()

	if u.db != nil {
		var record db.User
		err := u.db.Where("lower(name) = ?", key).First(&record).Error
		if err == nil {
			user := User{ID: record.ID, Name: record.Name}
			u.cache(user)
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, err
		}
	}

	user := User{ID: uuid.NewString(), Name: name}
	if u.db != nil {
		record := db.User{ID: user.ID, Name: user.Name}
		if err := u.db.Create(&record).Error; err != nil {
			if isUniqueViolation(err) {
				var existing db.User
				if lookupErr := u.db.Where("lower(name) = ?", key).First(&existing).Error; lookupErr == nil {
					user = User{ID: existing.ID, Name: existing.Name}
					u.cache(user)
					return user, nil
				}
			}
			return User{}, err
		}
	}
	u.cache(user)
	return user, nil
}

func (u *userRegistry) Name(id string) string {
	if id == "" {
		return ""
	}
	u.mu.Lock()
	user, ok := u.byID[id]
	u.mu.Unlock()
	if ok {
		return user.Name
	}
	if u.db == nil {
		return ""
	}
	var record db.User
	if err := u.db.Where("id = ?", id).First(&record).Error; err != nil {
		return ""
	}
	u.cache(User{ID: record.ID, Name: record.Name})
	return record.Name
}

func (u *userRegistry) cache(user User) {
	u.mu.Lock()
	u.byID[user.ID] = user
	u.byName[strings.ToLower(user.Name)] = user.ID
	u.mu.Unlock()
}
