package model

import (
	"time"

	"gorm.io/datatypes"
)

// Banner the persisted, user-facing live score record (banners table).
// IsEnabled is owned by operators: syncs set it on creation only.
type Banner struct {
	ID            string         `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	GameID        string         `gorm:"column:game_id;type:varchar(64);index;not null" json:"game_id"`
	Sport         Sport          `gorm:"column:sport;type:varchar(32);not null" json:"sport"`
	Source        Source         `gorm:"column:source;type:varchar(16);not null" json:"source"`
	HomeTeamID    string         `gorm:"column:home_team_id;type:varchar(128)" json:"home_team_id"`
	AwayTeamID    string         `gorm:"column:away_team_id;type:varchar(128)" json:"away_team_id"`
	HomeTeamName  string         `gorm:"column:home_team_name;type:varchar(128)" json:"home_team_name"`
	AwayTeamName  string         `gorm:"column:away_team_name;type:varchar(128)" json:"away_team_name"`
	HomeScore     int            `gorm:"column:home_score;type:int;default:0" json:"home_score"`
	AwayScore     int            `gorm:"column:away_score;type:int;default:0" json:"away_score"`
	GameStatus    GameStatus     `gorm:"column:game_status;type:varchar(16);index;not null" json:"game_status"`
	GameTime      string         `gorm:"column:game_time;type:varchar(64)" json:"game_time"`
	Venue         string         `gorm:"column:venue;type:varchar(128)" json:"venue"`
	Period        string         `gorm:"column:period;type:varchar(32)" json:"period"`
	TimeRemaining string         `gorm:"column:time_remaining;type:varchar(32)" json:"time_remaining"`
	Date          time.Time      `gorm:"column:date;type:timestamp;index;not null" json:"date"`
	Substitutions datatypes.JSON `gorm:"column:substitutions;type:jsonb" json:"substitutions"`
	Highlights    datatypes.JSON `gorm:"column:highlights;type:jsonb" json:"highlights"`
	IsEnabled     bool           `gorm:"column:is_enabled;type:boolean;not null" json:"is_enabled"`
	LastUpdated   *time.Time     `gorm:"column:last_updated;type:timestamp" json:"last_updated,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Banner) TableName() string { return "banners" }

// banner columns written by reconciliation
const (
	ColGameID        = "game_id"
	ColSport         = "sport"
	ColSource        = "source"
	ColHomeTeamID    = "home_team_id"
	ColAwayTeamID    = "away_team_id"
	ColHomeTeamName  = "home_team_name"
	ColAwayTeamName  = "away_team_name"
	ColHomeScore     = "home_score"
	ColAwayScore     = "away_score"
	ColGameStatus    = "game_status"
	ColGameTime      = "game_time"
	ColVenue         = "venue"
	ColPeriod        = "period"
	ColTimeRemaining = "time_remaining"
	ColDate          = "date"
	ColIsEnabled     = "is_enabled"
	ColLastUpdated   = "last_updated"
)

var emptyList = datatypes.JSON("[]")

// BannerFromGame new banner for a game: empty substitution/highlight lists, enabled flag inherited
func BannerFromGame(g *Game) *Banner {
	return &Banner{
		GameID:        g.ID,
		Sport:         g.Sport,
		Source:        g.Source,
		HomeTeamID:    g.HomeTeamID,
		AwayTeamID:    g.AwayTeamID,
		HomeTeamName:  g.HomeTeamName,
		AwayTeamName:  g.AwayTeamName,
		HomeScore:     g.HomeScore,
		AwayScore:     g.AwayScore,
		GameStatus:    g.GameStatus,
		GameTime:      g.GameTime,
		Venue:         g.Venue,
		Period:        g.Period,
		TimeRemaining: g.TimeRemaining,
		Date:          g.Date,
		Substitutions: emptyList,
		Highlights:    emptyList,
		IsEnabled:     g.IsEnabled,
	}
}

// BannerUpdateFields partial update that overwrites an existing banner with the game's state.
// is_enabled is never part of it.
func BannerUpdateFields(g *Game, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColGameID:        g.ID,
		ColSport:         string(g.Sport),
		ColSource:        string(g.Source),
		ColHomeTeamID:    g.HomeTeamID,
		ColAwayTeamID:    g.AwayTeamID,
		ColHomeTeamName:  g.HomeTeamName,
		ColAwayTeamName:  g.AwayTeamName,
		ColHomeScore:     g.HomeScore,
		ColAwayScore:     g.AwayScore,
		ColGameStatus:    string(g.GameStatus),
		ColGameTime:      g.GameTime,
		ColVenue:         g.Venue,
		ColPeriod:        g.Period,
		ColTimeRemaining: g.TimeRemaining,
		ColDate:          g.Date,
		ColLastUpdated:   now,
	}
}

// Expired final and older than the retention window.
// Age is measured from Date, then LastUpdated, then CreatedAt; a record with none of them is kept.
func (b *Banner) Expired(now time.Time, retention time.Duration) bool {
	if b.GameStatus != StatusFinal {
		return false
	}
	ref := b.ageReference()
	if ref.IsZero() {
		return false
	}
	return ref.Before(now.Add(-retention))
}

func (b *Banner) ageReference() time.Time {
	if !b.Date.IsZero() {
		return b.Date
	}
	if b.LastUpdated != nil && !b.LastUpdated.IsZero() {
		return *b.LastUpdated
	}
	return b.CreatedAt
}
