package model

// ========== NCAA scoreboard (GET /scoreboard/{sport}/{division}/{yyyy}/{mm}/{dd}/all-conf) ==========

// NCAAScoreboard scoreboard root
type NCAAScoreboard struct {
	InputMD5Sum string            `json:"inputMD5Sum"`
	UpdatedAt   string            `json:"updated_at"`
	Games       []NCAAGameWrapper `json:"games"`
}

// NCAAGameWrapper every entry is wrapped in a "game" object
type NCAAGameWrapper struct {
	Game NCAAGame `json:"game"`
}

// NCAAGame one contest
type NCAAGame struct {
	GameID         string   `json:"gameID"`
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Home           NCAATeam `json:"home"`
	Away           NCAATeam `json:"away"`
	GameState      string   `json:"gameState"`      // pre / live / final
	StartDate      string   `json:"startDate"`      // "01-05-2024"
	StartTime      string   `json:"startTime"`      // "7:00PM ET"
	StartTimeEpoch string   `json:"startTimeEpoch"` // unix seconds as string
	CurrentPeriod  string   `json:"currentPeriod"`  // "1st", "2nd", "HALF", "FINAL"
	ContestClock   string   `json:"contestClock"`   // "12:34"
	FinalMessage   string   `json:"finalMessage"`
	Network        string   `json:"network"`
}

// NCAATeam one side of the contest
type NCAATeam struct {
	Score       string        `json:"score"`
	Names       NCAATeamNames `json:"names"`
	Winner      bool          `json:"winner"`
	Seed        string        `json:"seed"`
	Description string        `json:"description"`
	Rank        string        `json:"rank"`
}

// NCAATeamNames name variants
type NCAATeamNames struct {
	Char6 string `json:"char6"`
	Short string `json:"short"`
	SEO   string `json:"seo"`
	Full  string `json:"full"`
}
