package sentiment

// baseLexicon carries general-purpose valences on the usual -4..4 scale.
// Domain-specific terms are expected to arrive via the configured override;
// this list only covers common evaluative words seen in headlines.
var baseLexicon = map[string]float64{
	"good":        1.9,
	"great":       3.1,
	"best":        3.2,
	"better":      1.9,
	"positive":    2.3,
	"strong":      2.3,
	"strength":    2.0,
	"win":         2.8,
	"wins":        2.8,
	"winner":      2.8,
	"beat":        2.0,
	"beats":       2.0,
	"boost":       1.9,
	"boosts":      1.9,
	"upbeat":      2.1,
	"optimism":    2.4,
	"optimistic":  2.4,
	"success":     2.7,
	"successful":  2.7,
	"growth":      2.4,
	"grow":        2.0,
	"grows":       2.0,
	"rise":        1.6,
	"rises":       1.6,
	"rising":      1.6,
	"climb":       1.5,
	"climbs":      1.5,
	"upgrade":     2.0,
	"upgraded":    2.0,
	"outperform":  2.2,
	"outperforms": 2.2,
	"bad":         -2.5,
	"worst":       -3.1,
	"worse":       -2.1,
	"negative":    -2.3,
	"weak":        -1.9,
	"weakness":    -1.8,
	"lose":        -2.3,
	"loses":       -2.3,
	"loser":       -2.5,
	"losses":      -2.4,
	"miss":        -1.7,
	"misses":      -1.7,
	"cut":         -1.4,
	"cuts":        -1.4,
	"fall":        -1.8,
	"falls":       -1.8,
	"falling":     -1.8,
	"decline":     -1.9,
	"declines":    -1.9,
	"slump":       -2.2,
	"slumps":      -2.2,
	"plummet":     -2.9,
	"plummets":    -2.9,
	"warning":     -1.9,
	"warns":       -1.8,
	"risk":        -1.1,
	"risks":       -1.1,
	"downgrade":   -2.0,
	"downgraded":  -2.0,
	"lawsuit":     -1.9,
	"fraud":       -3.2,
	"bankruptcy":  -3.4,
	"recession":   -2.6,
	"layoffs":     -2.3,
	"scandal":     -2.7,
	"concern":     -1.3,
	"concerns":    -1.3,
	"trouble":     -2.0,
	"panic":       -2.8,
}
