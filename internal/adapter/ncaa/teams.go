package ncaa

// teamIDs NCAA short / full / seo names (lowercase) -> internal team id
var teamIDs = map[string]string{
	"uc san diego":          "ucsd",
	"ucsd":                  "ucsd",
	"uc-san-diego":          "ucsd",
	"california san diego":  "ucsd",
	"ucla":                  "ucla",
	"usc":                   "usc",
	"southern california":   "usc",
	"uc irvine":             "uc-irvine",
	"uc-irvine":             "uc-irvine",
	"uc riverside":          "uc-riverside",
	"uc-riverside":          "uc-riverside",
	"uc santa barbara":      "uc-santa-barbara",
	"uc-santa-barbara":      "uc-santa-barbara",
	"uc davis":              "uc-davis",
	"uc-davis":              "uc-davis",
	"cal poly":              "cal-poly",
	"cal-poly":              "cal-poly",
	"cal st. fullerton":     "cal-state-fullerton",
	"cal state fullerton":   "cal-state-fullerton",
	"cal-st-fullerton":      "cal-state-fullerton",
	"long beach st.":        "long-beach-state",
	"long beach state":      "long-beach-state",
	"long-beach-st":         "long-beach-state",
	"csun":                  "csun",
	"cal st. northridge":    "csun",
	"cal st. bakersfield":   "cal-state-bakersfield",
	"cal-st-bakersfield":    "cal-state-bakersfield",
	"hawaii":                "hawaii",
	"hawai'i":               "hawaii",
	"san diego st.":         "san-diego-state",
	"san diego state":       "san-diego-state",
	"san-diego-st":          "san-diego-state",
	"san diego":             "san-diego",
	"san-diego":             "san-diego",
	"pepperdine":            "pepperdine",
	"stanford":              "stanford",
	"california":            "california",
	"point loma":            "point-loma",
	"concordia irvine":      "concordia-irvine",
	"cal baptist":           "cal-baptist",
	"california baptist":    "cal-baptist",
	"loyola marymount":      "loyola-marymount",
	"lmu (ca)":              "loyola-marymount",
	"pacific":               "pacific",
}
