package letters

import (
	"strings"

	"hopeconnect/internal/models"
)

// Render fills the template for (languageCode, letterType) with fields.
// Unknown languages fall back to English; unknown letter types are a
// validation error. Missing fields render as empty strings. The result
// depends only on the arguments.
func Render(languageCode, letterType string, fields models.LetterFields) (*models.Letter, error) {
	lt, err := ParseLetterType(letterType)
	if err != nil {
		return nil, err
	}
	lang := ResolveLanguage(languageCode)

	tmpl, ok := Lookup(lang, lt)
	if !ok {
		// Every (language, type) pair is bundled; reaching here means the
		// tables are out of sync.
		tmpl, _ = Lookup(DefaultLanguage, lt)
	}

	p := PronounsFor(lang, ParseGender(fields.GenderCategory))
	r := replacerFor(fields, p)

	return &models.Letter{
		Language:   string(tmpl.Language),
		LetterType: string(lt),
		Title:      r.Replace(tmpl.Title),
		Body:       r.Replace(tmpl.Body),
	}, nil
}

// RenderRequest is Render for the flat wire shape.
func RenderRequest(req models.LetterRequest) (*models.Letter, error) {
	return Render(req.LanguageCode, req.LetterType, req.LetterFields)
}

func replacerFor(f models.LetterFields, p Pronouns) *strings.Replacer {
	return strings.NewReplacer(
		phDate, f.Date,
		phClientName, f.ClientName,
		phRecipientName, f.RecipientName,
		phRecipientTitle, f.RecipientTitle,
		phRecipientOrganization, f.RecipientOrganization,
		phRecipientAddress, f.RecipientAddress,
		phSenderName, f.SenderName,
		phSenderTitle, f.SenderTitle,
		phSenderOrganization, f.SenderOrganization,
		phSenderPhone, f.SenderPhone,
		phSenderEmail, f.SenderEmail,
		phChallenges, f.Challenges,
		phStrengths, f.Strengths,
		phGoals, f.Goals,
		phSubject, p.Subject,
		phObject, p.Object,
		phPossessive, p.Possessive,
	)
}
