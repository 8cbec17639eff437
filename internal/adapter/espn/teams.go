package espn

// teamIDs ESPN abbreviations and display names (lowercase) -> internal team id
var teamIDs = map[string]string{
	"ucsd":                       "ucsd",
	"uc san diego":               "ucsd",
	"uc san diego tritons":       "ucsd",
	"ucla":                       "ucla",
	"ucla bruins":                "ucla",
	"usc":                        "usc",
	"usc trojans":                "usc",
	"uci":                        "uc-irvine",
	"uc irvine":                  "uc-irvine",
	"uc irvine anteaters":        "uc-irvine",
	"ucr":                        "uc-riverside",
	"uc riverside":               "uc-riverside",
	"uc riverside highlanders":   "uc-riverside",
	"ucsb":                       "uc-santa-barbara",
	"uc santa barbara":           "uc-santa-barbara",
	"uc santa barbara gauchos":   "uc-santa-barbara",
	"ucd":                        "uc-davis",
	"uc davis":                   "uc-davis",
	"uc davis aggies":            "uc-davis",
	"cp":                         "cal-poly",
	"cal poly":                   "cal-poly",
	"cal poly mustangs":          "cal-poly",
	"csuf":                       "cal-state-fullerton",
	"cal state fullerton":        "cal-state-fullerton",
	"cal state fullerton titans": "cal-state-fullerton",
	"lbsu":                       "long-beach-state",
	"long beach st":              "long-beach-state",
	"long beach state":           "long-beach-state",
	"long beach state beach":     "long-beach-state",
	"csun":                       "csun",
	"csun matadors":              "csun",
	"csub":                       "cal-state-bakersfield",
	"cal state bakersfield":      "cal-state-bakersfield",
	"haw":                        "hawaii",
	"hawai'i":                    "hawaii",
	"hawai'i rainbow warriors":   "hawaii",
	"sdsu":                       "san-diego-state",
	"san diego st":               "san-diego-state",
	"san diego state aztecs":     "san-diego-state",
	"usd":                        "san-diego",
	"san diego":                  "san-diego",
	"san diego toreros":          "san-diego",
}
