package scoring

import "hopeconnect/internal/models"

// Disclaimer is appended to every interpretation.
const Disclaimer = "This assessment is not a diagnosis and does not replace professional advice."

const noUpperBound = -1

// Band is one row of the severity table. A percentage belongs to the first
// band, in table order, whose UpperBound it is strictly below.
type Band struct {
	UpperBound      int // percent, exclusive
	Severity        models.Severity
	Interpretation  string
	Recommendations string
}

// Bands is ordered ascending. Lower bounds are inclusive: 25, 50 and 75
// belong to mild, moderate and severe.
var Bands = []Band{
	{
		UpperBound: 25,
		Severity:   models.SeverityMinimal,
		Interpretation: "Your answers suggest you are experiencing minimal difficulties at the moment. " +
			"You appear to be coping with the pressures you are facing.",
		Recommendations: "Keep doing the things that help you stay well, such as regular sleep, meals and contact " +
			"with people you trust. You can take this assessment again at any time if things change.",
	},
	{
		UpperBound: 50,
		Severity:   models.SeverityMild,
		Interpretation: "Your answers suggest you are experiencing mild difficulties. " +
			"Stress or low mood may be affecting some parts of your life.",
		Recommendations: "Consider talking to someone you trust or to a support worker about how you are feeling. " +
			"Day centres, peer support groups and your GP can all offer help.",
	},
	{
		UpperBound: 75,
		Severity:   models.SeverityModerate,
		Interpretation: "Your answers suggest you are experiencing moderate difficulties " +
			"that are likely to be affecting your daily life.",
		Recommendations: "We recommend speaking to a GP or a mental health service soon. NHS talking therapies " +
			"accept self-referrals, and a support worker can help you arrange an appointment.",
	},
	{
		UpperBound: noUpperBound,
		Severity:   models.SeveritySevere,
		Interpretation: "Your answers suggest you are experiencing severe difficulties. " +
			"You do not have to deal with this on your own.",
		Recommendations: "Please seek support as soon as possible. Contact a GP or call NHS 111 and choose the " +
			"mental health option. If you are in immediate danger call 999 or go to A&E. " +
			"Samaritans can be reached day or night on 116 123.",
	},
}

// ClassifyScore returns the band for total out of max. The comparison is
// done in integers so band edges are exact.
func ClassifyScore(total, max int) Band {
	for _, b := range Bands {
		if b.UpperBound == noUpperBound || total*100 < b.UpperBound*max {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// ClassifyPercentage returns the band for an already computed percentage.
func ClassifyPercentage(pct float64) Band {
	for _, b := range Bands {
		if b.UpperBound == noUpperBound || pct < float64(b.UpperBound) {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// BandFor returns the table row for severity.
func BandFor(severity models.Severity) (Band, bool) {
	for _, b := range Bands {
		if b.Severity == severity {
			return b, true
		}
	}
	return Band{}, false
}
