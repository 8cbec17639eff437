package model

import (
	"errors"
	"fmt"
)

// Sport canonical sport key. The set is closed: every value is listed in allSports.
type Sport string

const (
	SportBasketball      Sport = "basketball" // men's basketball
	SportBaseball        Sport = "baseball"
	SportBasketballWomen Sport = "basketball-women"
	SportSoccerMen       Sport = "soccer-men"
	SportSoccerWomen     Sport = "soccer-women"
	SportVolleyballMen   Sport = "volleyball-men"
	SportVolleyballWomen Sport = "volleyball-women"
	SportSoftball        Sport = "softball"
	SportWaterPoloMen    Sport = "water-polo-men"
	SportWaterPoloWomen  Sport = "water-polo-women"
)

var allSports = []Sport{
	SportBasketball,
	SportBaseball,
	SportBasketballWomen,
	SportSoccerMen,
	SportSoccerWomen,
	SportVolleyballMen,
	SportVolleyballWomen,
	SportSoftball,
	SportWaterPoloMen,
	SportWaterPoloWomen,
}

// ErrUnknownSport matches every *UnknownSportError through errors.Is
var ErrUnknownSport = errors.New("unknown sport")

// UnknownSportError a sport key outside the supported set. This is a configuration
// defect, callers must not retry it.
type UnknownSportError struct {
	Sport string
}

func (e *UnknownSportError) Error() string {
	return fmt.Sprintf("unknown sport %q", e.Sport)
}

func (e *UnknownSportError) Is(target error) bool {
	return target == ErrUnknownSport
}

// AllSports every supported sport in declaration order
func AllSports() []Sport {
	out := make([]Sport, len(allSports))
	copy(out, allSports)
	return out
}

// ParseSport validates a raw sport key
func ParseSport(s string) (Sport, error) {
	sport := Sport(s)
	if !sport.Valid() {
		return "", &UnknownSportError{Sport: s}
	}
	return sport, nil
}

// Valid whether the sport is part of the supported set
func (s Sport) Valid() bool {
	for _, known := range allSports {
		if s == known {
			return true
		}
	}
	return false
}

// MidpointPeriod the period whose end is the mid-game break (halftime); 0 when the sport has none.
func (s Sport) MidpointPeriod() int {
	switch s {
	case SportBasketball, SportBasketballWomen, SportWaterPoloMen, SportWaterPoloWomen:
		return 2
	case SportSoccerMen, SportSoccerWomen:
		return 1
	default:
		// baseball, softball and volleyball play without a clock
		return 0
	}
}
