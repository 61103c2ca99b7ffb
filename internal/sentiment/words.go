package sentiment

// polarityLexicon maps lowercase words to signed contributions, AFINN-style.
// Deliberately small: financial-news vocabulary plus common polarity words.
var polarityLexicon = map[string]int{
	// positive
	"love":          3,
	"excellent":     3,
	"outstanding":   3,
	"great":         3,
	"wonderful":     3,
	"win":           2,
	"wins":          2,
	"winning":       2,
	"good":          2,
	"strong":        2,
	"growth":        2,
	"profit":        2,
	"profits":       2,
	"profitable":    2,
	"gain":          2,
	"gains":         2,
	"surge":         2,
	"surges":        2,
	"soar":          2,
	"soars":         2,
	"rally":         2,
	"record":        1,
	"beat":          2,
	"beats":         2,
	"upgrade":       2,
	"upgraded":      2,
	"bullish":       2,
	"optimistic":    2,
	"positive":      2,
	"success":       2,
	"successful":    2,
	"improve":       2,
	"improved":      2,
	"improvement":   2,
	"boost":         2,
	"boosts":        2,
	"recovery":      2,
	"recover":       2,
	"rebound":       2,
	"outperform":    2,
	"outperforms":   2,
	"dividend":      1,
	"expansion":     1,
	"opportunity":   1,
	"promising":     2,
	"robust":        2,
	"solid":         2,
	"momentum":      1,
	"breakthrough":  2,
	"innovative":    1,

	// negative
	"terrible":      -3,
	"horrible":      -3,
	"awful":         -3,
	"disaster":      -3,
	"disastrous":    -3,
	"crash":         -2,
	"crashes":       -2,
	"crisis":        -2,
	"bad":           -2,
	"weak":          -2,
	"loss":          -2,
	"losses":        -2,
	"lose":          -2,
	"loses":         -2,
	"losing":        -2,
	"decline":       -2,
	"declines":      -2,
	"declined":      -2,
	"drop":          -2,
	"drops":         -2,
	"plunge":        -2,
	"plunges":       -2,
	"plummet":       -2,
	"plummets":      -2,
	"slump":         -2,
	"slumps":        -2,
	"fall":          -1,
	"falls":         -1,
	"fell":          -1,
	"miss":          -2,
	"misses":        -2,
	"missed":        -2,
	"downgrade":     -2,
	"downgraded":    -2,
	"bearish":       -2,
	"pessimistic":   -2,
	"negative":      -2,
	"fail":          -2,
	"fails":         -2,
	"failure":       -2,
	"bankruptcy":    -3,
	"bankrupt":      -3,
	"fraud":         -3,
	"scandal":       -3,
	"lawsuit":       -2,
	"investigation": -1,
	"layoff":        -2,
	"layoffs":       -2,
	"recession":     -2,
	"selloff":       -2,
	"warning":       -1,
	"concern":       -1,
	"concerns":      -1,
	"risk":          -1,
	"risks":         -1,
	"volatile":      -1,
	"uncertainty":   -1,
	"debt":          -1,
	"cut":           -1,
	"cuts":          -1,
	"underperform":  -2,
	"underperforms": -2,
}
