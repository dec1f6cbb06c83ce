package storage

import (
	"time"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
)

// File records mirror the domain types with stable JSON field names, so the
// snapshot format does not shift when domain structs are refactored.

type snapshotFileModel struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"saved_at"`
	Players []playerFileModel `json:"players"`
	News    []newsFileModel   `json:"news"`
	Matches []matchFileModel  `json:"matches"`
}

type playerFileModel struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Photo           string `json:"photo,omitempty"`
	Role            string `json:"role"`
	Goals           int    `json:"goals"`
	Assists         int    `json:"assists"`
	Matches         int    `json:"matches"`
	MOTMCount       int    `json:"motm_count"`
	HattrickCount   int    `json:"hattrick_count"`
	CleanSheetCount int    `json:"clean_sheet_count"`
}

type newsFileModel struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	Rivalry   string    `json:"rivalry,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type statLineFileModel struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
}

type appliedStatFileModel struct {
	Goals   int  `json:"goals"`
	Assists int  `json:"assists"`
	Counted bool `json:"counted"`
}

type matchFileModel struct {
	ID               string                          `json:"id"`
	Date             string                          `json:"date"`
	Time             string                          `json:"time,omitempty"`
	Location         string                          `json:"location,omitempty"`
	Rivalry          string                          `json:"rivalry,omitempty"`
	Notes            string                          `json:"notes,omitempty"`
	Status           string                          `json:"status"`
	TeamA            []string                        `json:"team_a,omitempty"`
	TeamB            []string                        `json:"team_b,omitempty"`
	TeamC            []string                        `json:"team_c,omitempty"`
	Stats            map[string]statLineFileModel    `json:"stats,omitempty"`
	MOTM             []string                        `json:"motm,omitempty"`
	Hattricks        []string                        `json:"hattricks,omitempty"`
	CleanSheetPlayer string                          `json:"clean_sheet_player,omitempty"`
	Applied          map[string]appliedStatFileModel `json:"applied,omitempty"`
}

func playerToFile(p player.Player) playerFileModel {
	return playerFileModel{
		ID:              p.ID,
		Name:            p.Name,
		Photo:           p.Photo,
		Role:            string(p.Role),
		Goals:           p.Goals,
		Assists:         p.Assists,
		Matches:         p.Matches,
		MOTMCount:       p.MOTMCount,
		HattrickCount:   p.HattrickCount,
		CleanSheetCount: p.CleanSheetCount,
	}
}

func playerFromFile(m playerFileModel) player.Player {
	return player.Player{
		ID:              m.ID,
		Name:            m.Name,
		Photo:           m.Photo,
		Role:            player.Role(m.Role),
		Goals:           m.Goals,
		Assists:         m.Assists,
		Matches:         m.Matches,
		MOTMCount:       m.MOTMCount,
		HattrickCount:   m.HattrickCount,
		CleanSheetCount: m.CleanSheetCount,
	}
}

func newsToFile(item news.Item) newsFileModel {
	return newsFileModel{
		ID:        item.ID,
		Title:     item.Title,
		Details:   item.Details,
		Rivalry:   item.Rivalry,
		Image:     item.Image,
		CreatedAt: item.CreatedAt,
	}
}

func newsFromFile(m newsFileModel) news.Item {
	return news.Item{
		ID:        m.ID,
		Title:     m.Title,
		Details:   m.Details,
		Rivalry:   m.Rivalry,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
	}
}

func matchToFile(m match.Match) matchFileModel {
	out := matchFileModel{
		ID:               m.ID,
		Date:             m.Date,
		Time:             m.Time,
		Location:         m.Location,
		Rivalry:          m.Rivalry,
		Notes:            m.Notes,
		Status:           string(m.Status),
		TeamA:            m.TeamA,
		TeamB:            m.TeamB,
		TeamC:            m.TeamC,
		MOTM:             m.MOTM,
		Hattricks:        m.Hattricks,
		CleanSheetPlayer: m.CleanSheetPlayer,
	}

	if len(m.Stats) > 0 {
		out.Stats = make(map[string]statLineFileModel, len(m.Stats))
		for id, line := range m.Stats {
			out.Stats[id] = statLineFileModel{Goals: line.Goals, Assists: line.Assists}
		}
	}
	if len(m.Applied) > 0 {
		out.Applied = make(map[string]appliedStatFileModel, len(m.Applied))
		for id, applied := range m.Applied {
			out.Applied[id] = appliedStatFileModel{
				Goals:   applied.Goals,
				Assists: applied.Assists,
				Counted: applied.Counted,
			}
		}
	}

	return out
}

func matchFromFile(m matchFileModel) match.Match {
	out := match.Match{
		ID:               m.ID,
		Date:             m.Date,
		Time:             m.Time,
		Location:         m.Location,
		Rivalry:          m.Rivalry,
		Notes:            m.Notes,
		Status:           match.Status(m.Status),
		TeamA:            m.TeamA,
		TeamB:            m.TeamB,
		TeamC:            m.TeamC,
		MOTM:             m.MOTM,
		Hattricks:        m.Hattricks,
		CleanSheetPlayer: m.CleanSheetPlayer,
		Stats:            make(map[string]match.StatLine, len(m.Stats)),
		Applied:          make(map[string]match.AppliedStat, len(m.Applied)),
	}

	for id, line := range m.Stats {
		out.Stats[id] = match.StatLine{Goals: line.Goals, Assists: line.Assists}
	}
	for id, applied := range m.Applied {
		out.Applied[id] = match.AppliedStat{
			Goals:   applied.Goals,
			Assists: applied.Assists,
			Counted: applied.Counted,
		}
	}

	return out
}
