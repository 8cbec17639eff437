package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"ScoreSync/internal/model"

	"github.com/samber/lo"
)

// MatchesInstitution case-insensitive substring match of any alias against any of the names
func MatchesInstitution(aliases []string, names ...string) bool {
	return lo.SomeBy(names, func(name string) bool {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return false
		}
		return lo.SomeBy(aliases, func(alias string) bool {
			alias = strings.ToLower(strings.TrimSpace(alias))
			return alias != "" && strings.Contains(name, alias)
		})
	})
}

// ParseScore non-negative score, 0 when absent or unparseable
func ParseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ResolveTeamID first candidate found in the alias table (keys are lowercase); otherwise the slug of fallbackName
func ResolveTeamID(table map[string]string, fallbackName string, candidates ...string) string {
	for _, c := range candidates {
		if id, ok := table[strings.ToLower(strings.TrimSpace(c))]; ok {
			return id
		}
	}
	return model.Slugify(fallbackName)
}

// FirstNonEmpty first non-blank value
func FirstNonEmpty(values ...string) string {
	v, _ := lo.Find(values, func(s string) bool { return strings.TrimSpace(s) != "" })
	return strings.TrimSpace(v)
}

// Ordinal 1 -> "1st", 2 -> "2nd", 11 -> "11th"
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
