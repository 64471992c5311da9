package sgpa

// Tier is a qualitative SGPA level, highest first.
type Tier int

const (
	TierOutstanding Tier = iota
	TierExcellent
	TierGood
	TierAverage
	TierBelowAverage
)

// Colour bands of the result badge. The colour scale has four steps while
// the label scale has five: Average and Below Average share red.
const (
	ColorGreen  = "#22C55E"
	ColorBlue   = "#3B82F6"
	ColorYellow = "#EAB308"
	ColorRed    = "#EF4444"
)

// Band is the label and colour shown for an SGPA value.
type Band struct {
	Tier      Tier
	Label     string
	Color     string // hex
	ColorName string
}

type threshold struct {
	min  float64
	band Band
}

// Descending, left-closed thresholds; the first match wins.
var labelThresholds = []threshold{
	{9.0, Band{Tier: TierOutstanding, Label: "Outstanding"}},
	{8.0, Band{Tier: TierExcellent, Label: "Excellent"}},
	{7.0, Band{Tier: TierGood, Label: "Good"}},
	{6.0, Band{Tier: TierAverage, Label: "Average"}},
}

var belowAverage = Band{Tier: TierBelowAverage, Label: "Below Average"}

type colorStep struct {
	min  float64
	hex  string
	name string
}

var colorSteps = []colorStep{
	{9.0, ColorGreen, "green"},
	{8.0, ColorBlue, "blue"},
	{7.0, ColorYellow, "yellow"},
}

// BandFor maps an SGPA value to its label and colour.
func BandFor(value float64) Band {
	b := belowAverage
	for _, t := range labelThresholds {
		if value >= t.min {
			b = t.band
			break
		}
	}

	b.Color, b.ColorName = ColorRed, "red"
	for _, s := range colorSteps {
		if value >= s.min {
			b.Color, b.ColorName = s.hex, s.name
			break
		}
	}
	return b
}

// Label is shorthand for BandFor(value).Label.
func Label(value float64) string {
	return BandFor(value).Label
}

func (t Tier) String() string {
	switch t {
	case TierOutstanding:
		return "outstanding"
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierAverage:
		return "average"
	default:
		return "below_average"
	}
}
