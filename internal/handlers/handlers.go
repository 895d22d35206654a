package handlers

import (
	"time"

	"codecard/internal/database"
	"codecard/internal/startup"
)

type Handlers struct {
	db        *database.Database
	config    *startup.Config
	startTime time.Time
}

// New builds the handler set. db may be nil when job history is
// disabled; generation endpoints work either way.
func New(db *database.Database, config *startup.Config) *Handlers {
	return &Handlers{
		db:        db,
		config:    config,
		startTime: time.Now(),
	}
}
