package adapter

import (
	"fmt"

	"ScoreSync/internal/model"

	"github.com/samber/lo"
)

// Classify the provider responsible for a sport. Every model.Sport has exactly one case;
// the compiler rejects a constant listed twice, so the partitions cannot overlap.
func Classify(sport model.Sport) (model.Source, error) {
	switch sport {
	case model.SportBasketball,
		model.SportBaseball:
		return model.SourceESPN, nil
	case model.SportBasketballWomen,
		model.SportSoccerMen,
		model.SportSoccerWomen,
		model.SportVolleyballMen,
		model.SportVolleyballWomen,
		model.SportSoftball,
		model.SportWaterPoloMen,
		model.SportWaterPoloWomen:
		return model.SourceNCAA, nil
	default:
		return "", &model.UnknownSportError{Sport: string(sport)}
	}
}

// SportsFor sports served by one provider, in declaration order
func SportsFor(source model.Source) []model.Sport {
	return lo.Filter(model.AllSports(), func(s model.Sport, _ int) bool {
		src, err := Classify(s)
		return err == nil && src == source
	})
}

// GetAllAvailableSports every routable sport
func GetAllAvailableSports() []model.Sport {
	return model.AllSports()
}

// GetESPNSports sports served by the ESPN adapter
func GetESPNSports() []model.Sport {
	return SportsFor(model.SourceESPN)
}

// GetNCAASports sports served by the NCAA adapter
func GetNCAASports() []model.Sport {
	return SportsFor(model.SourceNCAA)
}

// validateRouting every sport is routed and the two partitions cover the set exactly
func validateRouting() error {
	for _, s := range model.AllSports() {
		if _, err := Classify(s); err != nil {
			return fmt.Errorf("sport %s has no provider: %w", s, err)
		}
	}
	espn, ncaa := GetESPNSports(), GetNCAASports()
	if shared := lo.Intersect(espn, ncaa); len(shared) > 0 {
		return fmt.Errorf("sports served by both providers: %v", shared)
	}
	if len(espn)+len(ncaa) != len(model.AllSports()) {
		return fmt.Errorf("routing covers %d of %d sports", len(espn)+len(ncaa), len(model.AllSports()))
	}
	return nil
}

func init() {
	if err := validateRouting(); err != nil {
		panic(fmt.Sprintf("sport routing misconfigured: %v", err))
	}
}
