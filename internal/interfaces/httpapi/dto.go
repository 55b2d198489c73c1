package httpapi

import (
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

type bulkBuzzerbeaterRequest struct {
	MatchIDs   []int64 `json:"match_ids" validate:"required,min=1,max=500,dive,gt=0"`
	MaxWorkers int     `json:"max_workers" validate:"gte=0,lte=32"`
}

type reportImportDTO struct {
	MatchID    int64  `json:"match_id"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	EventCount int    `json:"event_count"`
}

type storedHitsDTO struct {
	MatchID int64              `json:"match_id"`
	Count   int                `json:"count"`
	Hits    []buzzerbeater.Hit `json:"hits"`
}

func reportImportToDTO(report playbyplay.Report) reportImportDTO {
	return reportImportDTO{
		MatchID:    report.MatchID,
		HomeTeam:   report.HomeTeam.Name,
		AwayTeam:   report.AwayTeam.Name,
		EventCount: len(report.Events),
	}
}

func storedHitsToDTO(matchID int64, hits []buzzerbeater.Hit) storedHitsDTO {
	if hits == nil {
		hits = []buzzerbeater.Hit{}
	}
	return storedHitsDTO{
		MatchID: matchID,
		Count:   len(hits),
		Hits:    hits,
	}
}
