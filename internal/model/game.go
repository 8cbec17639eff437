package model

import (
	"fmt"
	"time"
)

// Source upstream provider that produced a game
type Source string

const (
	SourceESPN Source = "espn" // major sports API scoreboard
	SourceNCAA Source = "ncaa" // collegiate scoreboard API
)

// GameStatus canonical contest state
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusHalftime  GameStatus = "halftime"
	StatusFinal     GameStatus = "final"
	StatusPostponed GameStatus = "postponed" // operator-only, adapters never emit it
)

// Valid reports whether s is one of the five canonical statuses
func (s GameStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusHalftime, StatusFinal, StatusPostponed:
		return true
	}
	return false
}

// Game normalized contest shared by every provider; rebuilt every sync cycle, never persisted as is.
// ID is provider scoped: (Source, ID) is the real key.
type Game struct {
	ID            string     `json:"id"`
	Sport         Sport      `json:"sport"`
	Source        Source     `json:"source"`
	HomeTeamID    string     `json:"home_team_id"`
	AwayTeamID    string     `json:"away_team_id"`
	HomeTeamName  string     `json:"home_team_name"`
	AwayTeamName  string     `json:"away_team_name"`
	HomeScore     int        `json:"home_score"`
	AwayScore     int        `json:"away_score"`
	GameStatus    GameStatus `json:"game_status"`
	GameTime      string     `json:"game_time"`
	Venue         string     `json:"venue"`
	Period        string     `json:"period"`
	TimeRemaining string     `json:"time_remaining"`
	Date          time.Time  `json:"date"`
	IsEnabled     bool       `json:"is_enabled"`
}

// Key globally unique key of the game
func (g *Game) Key() string {
	return fmt.Sprintf("%s:%s", g.Source, g.ID)
}

// Started live, halftime or final
func (g *Game) Started() bool {
	return g.GameStatus == StatusLive || g.GameStatus == StatusHalftime || g.GameStatus == StatusFinal
}
