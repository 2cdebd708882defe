package server

import (
	"log"

	"ai-pictionary/internal/db"
)

// RestoreGames reloads persisted game documents into the live store on boot.
// A row that fails to decode is skipped with a log line rather than blocking
// startup.
func (s *Server) RestoreGames() error {
	if s.db == nil {
		return nil
	}
	var records []db.Game
	if err := s.db.Find(&records).Error; err != nil {
		return err
	}
	restored := 0
	for i := range records {
		game, err := gameFromRecord(&records[i])
		if err != nil {
			log.Printf("skipping corrupt game row game_id=%s: %v", records[i].ID, err)
			continue
		}
		if err := s.store.Restore(game); err != nil {
			continue
		}
		restored++
	}
	if restored > 0 {
		log.Printf("restored %d games from database", restored)
	}
	return nil
}
