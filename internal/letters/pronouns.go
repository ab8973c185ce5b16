package letters

// Pronouns fills the {subject}, {object} and {possessive} placeholders.
type Pronouns struct {
	Subject    string
	Object     string
	Possessive string
}

var pronounTable = map[Language][3]Pronouns{
	English: {
		Neutral: {"they", "them", "their"},
		Male:    {"he", "him", "his"},
		Female:  {"she", "her", "her"},
	},
	Spanish: {
		Neutral: {"elle", "elle", "su"},
		Male:    {"él", "él", "su"},
		Female:  {"ella", "ella", "su"},
	},
	French: {
		Neutral: {"iel", "iel", "son"},
		Male:    {"il", "lui", "son"},
		Female:  {"elle", "elle", "sa"},
	},
	German: {
		Neutral: {"die Person", "die Person", "ihr"},
		Male:    {"er", "ihn", "sein"},
		Female:  {"sie", "sie", "ihr"},
	},
	Chinese: {
		Neutral: {"TA", "TA", "TA的"},
		Male:    {"他", "他", "他的"},
		Female:  {"她", "她", "她的"},
	},
}

// PronounsFor returns the pronoun set for lang and g. Unknown languages use
// DefaultLanguage; out-of-range genders use Neutral.
func PronounsFor(lang Language, g Gender) Pronouns {
	set, ok := pronounTable[lang]
	if !ok {
		set = pronounTable[DefaultLanguage]
	}
	if g < Neutral || g > Female {
		g = Neutral
	}
	return set[g]
}
