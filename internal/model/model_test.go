package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseSport(t *testing.T) {
	for _, s := range AllSports() {
		got, err := ParseSport(string(s))
		if err != nil || got != s {
			t.Errorf("ParseSport(%q) = %q, %v", s, got, err)
		}
	}

	_, err := ParseSport("curling")
	if !errors.Is(err, ErrUnknownSport) {
		t.Fatalf("unknown sport err = %v", err)
	}
	var use *UnknownSportError
	if !errors.As(err, &use) || use.Sport != "curling" {
		t.Fatalf("typed error = %#v", err)
	}
}

func TestAllSportsReturnsCopy(t *testing.T) {
	sports := AllSports()
	sports[0] = "changed"
	if AllSports()[0] != SportBasketball {
		t.Fatal("AllSports exposed its backing array")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"UC San Diego":        "uc-san-diego",
		"  Hawai'i  ":         "hawai-i",
		"Cal St. Fullerton":   "cal-st-fullerton",
		"Texas A&M--Commerce": "texas-a-m-commerce",
		"":                    "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBannerUpdateFieldsNeverTouchesEnabled(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	g := &Game{ID: "1", Sport: SportSoftball, Source: SourceNCAA, HomeScore: 4, GameStatus: StatusLive, IsEnabled: true}

	fields := BannerUpdateFields(g, now)
	if _, ok := fields[ColIsEnabled]; ok {
		t.Fatal("update fields must not carry is_enabled")
	}
	if fields[ColGameStatus] != "live" || fields[ColHomeScore] != 4 || fields[ColLastUpdated] != now {
		t.Fatalf("fields = %v", fields)
	}
}

func TestBannerFromGame(t *testing.T) {
	b := BannerFromGame(&Game{ID: "7", Sport: SportBaseball, Source: SourceESPN, IsEnabled: true})
	if b.ID != "" || b.GameID != "7" || !b.IsEnabled {
		t.Fatalf("banner = %+v", b)
	}
	if string(b.Substitutions) != "[]" || string(b.Highlights) != "[]" {
		t.Fatalf("lists = %s %s", b.Substitutions, b.Highlights)
	}
}

func TestBannerExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		status GameStatus
		age    time.Duration
		want   bool
	}{
		{StatusFinal, 23 * time.Hour, false},
		{StatusFinal, 25 * time.Hour, true},
		{StatusLive, 48 * time.Hour, false},
		{StatusPostponed, 72 * time.Hour, false},
	}
	for _, tt := range tests {
		b := &Banner{GameStatus: tt.status, Date: now.Add(-tt.age)}
		if got := b.Expired(now, 24*time.Hour); got != tt.want {
			t.Errorf("%s aged %s: Expired = %v, want %v", tt.status, tt.age, got, tt.want)
		}
	}
}

func TestBannerExpiredWithoutDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-30 * time.Hour)
	recent := now.Add(-2 * time.Hour)

	tests := []struct {
		name   string
		banner Banner
		want   bool
	}{
		{"no timestamps at all", Banner{GameStatus: StatusFinal}, false},
		{"recent last update", Banner{GameStatus: StatusFinal, LastUpdated: &recent, CreatedAt: old}, false},
		{"old last update", Banner{GameStatus: StatusFinal, LastUpdated: &old}, true},
		{"falls back to created_at", Banner{GameStatus: StatusFinal, CreatedAt: recent}, false},
		{"old created_at", Banner{GameStatus: StatusFinal, CreatedAt: old}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.banner.Expired(now, 24*time.Hour); got != tt.want {
				t.Fatalf("Expired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameHelpers(t *testing.T) {
	g := &Game{ID: "401", Source: SourceESPN, GameStatus: StatusHalftime}
	if g.Key() != "espn:401" || !g.Started() {
		t.Fatalf("key/started = %s %v", g.Key(), g.Started())
	}
	if (&Game{GameStatus: StatusScheduled}).Started() {
		t.Fatal("scheduled game is not started")
	}
	if GameStatus("delayed").Valid() || !StatusPostponed.Valid() {
		t.Fatal("status validity mismatch")
	}
}
