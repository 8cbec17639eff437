package model

// ========== ESPN site API scoreboard (GET /{sport}/{league}/scoreboard) ==========

// ESPNScoreboard scoreboard root
type ESPNScoreboard struct {
	Events []ESPNEvent `json:"events"`
}

// ESPNEvent one contest
type ESPNEvent struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"` // "2024-01-05T03:00Z"
	Name         string            `json:"name"`
	ShortName    string            `json:"shortName"`
	Competitions []ESPNCompetition `json:"competitions"`
	Status       ESPNStatus        `json:"status"`
}

// ESPNCompetition the competition inside an event, carries both competitors
type ESPNCompetition struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Venue       ESPNVenue        `json:"venue"`
	Competitors []ESPNCompetitor `json:"competitors"`
	Status      *ESPNStatus      `json:"status,omitempty"`
}

// ESPNVenue venue
type ESPNVenue struct {
	FullName string `json:"fullName"`
}

// ESPNCompetitor one side of the contest
type ESPNCompetitor struct {
	ID       string   `json:"id"`
	HomeAway string   `json:"homeAway"` // home / away
	Score    string   `json:"score"`    // "71"
	Team     ESPNTeam `json:"team"`
}

// ESPNTeam team names
type ESPNTeam struct {
	ID               string `json:"id"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Location         string `json:"location"`
	Name             string `json:"name"`
}

// ESPNStatus clock and period
type ESPNStatus struct {
	Clock        float64        `json:"clock"` // seconds left in the period
	DisplayClock string         `json:"displayClock"`
	Period       int            `json:"period"`
	Type         ESPNStatusType `json:"type"`
}

// ESPNStatusType state: pre / in / post
type ESPNStatusType struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // STATUS_SCHEDULED, STATUS_IN_PROGRESS, STATUS_HALFTIME, STATUS_FINAL
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
}
