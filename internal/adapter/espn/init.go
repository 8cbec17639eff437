package espn

import (
	"fmt"

	"ScoreSync/internal/adapter"
	"ScoreSync/internal/model"
)

func init() {
	// every sport routed to ESPN needs a scoreboard path
	for _, sport := range adapter.GetESPNSports() {
		if _, ok := sportPaths[sport]; !ok {
			panic(fmt.Sprintf("espn: no scoreboard path for routed sport %s", sport))
		}
	}
	adapter.Register(model.SourceESPN, NewESPNAdapter)
}
