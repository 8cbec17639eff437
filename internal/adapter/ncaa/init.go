package ncaa

import (
	"fmt"

	"ScoreSync/internal/adapter"
	"ScoreSync/internal/model"
)

func init() {
	for _, sport := range adapter.GetNCAASports() {
		if _, ok := sportPaths[sport]; !ok {
			panic(fmt.Sprintf("ncaa: no scoreboard path for routed sport %s", sport))
		}
	}
	adapter.Register(model.SourceNCAA, NewNCAAAdapter)
}
