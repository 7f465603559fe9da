package api

import (
	"github.com/memoflash/memoflash/internal/db"
	"github.com/memoflash/memoflash/internal/jobs"
	"github.com/memoflash/memoflash/internal/services"
)

type Server struct {
	DB             *db.DB
	ProfileService services.ProfileService
	DeckService    services.DeckService
	CardService    services.CardService
	ReviewService  services.ReviewService
	StatsService   services.StatsService
	JobQueue       jobs.JobQueue
}
