// Package i18n maps a closed set of message keys to per-locale strings
// for the contributor-facing surfaces. Missing keys fail the
// completeness test rather than rendering blank.
package i18n

// Key identifies one translatable message.
type Key string

const (
	KeyFormTitle         Key = "form.title"
	KeyStepLanguage      Key = "form.step.language"
	KeyStepContributor   Key = "form.step.contributor"
	KeyStepContent       Key = "form.step.content"
	KeyStepConsent       Key = "form.step.consent"
	KeySubmit            Key = "form.submit"
	KeySubmitSuccess     Key = "form.success"
	KeySubmitFailure     Key = "form.failure"
	KeyConsentLabel      Key = "form.consent_label"
	KeyFeedbackTitle     Key = "feedback.title"
	KeyFeedbackSent      Key = "feedback.sent"
	KeyLanguageTamil     Key = "language.tamil"
	KeyLanguageSinhala   Key = "language.sinhala"
	KeyLanguageEnglish   Key = "language.english"
	KeyUploadDocuments   Key = "upload.documents"
	KeyUploadPhotos      Key = "upload.photos"
	KeyStatsContributors Key = "stats.contributors"
	KeyStatsDatasets     Key = "stats.datasets"
)

// Keys lists every message key; locale tables must cover all of them.
var Keys = []Key{
	KeyFormTitle, KeyStepLanguage, KeyStepContributor, KeyStepContent,
	KeyStepConsent, KeySubmit, KeySubmitSuccess, KeySubmitFailure,
	KeyConsentLabel, KeyFeedbackTitle, KeyFeedbackSent,
	KeyLanguageTamil, KeyLanguageSinhala, KeyLanguageEnglish,
	KeyUploadDocuments, KeyUploadPhotos,
	KeyStatsContributors, KeyStatsDatasets,
}

// Locales maps locale codes to their message tables.
var Locales = map[string]map[Key]string{
	"en": english,
	"ta": tamil,
	"si": sinhala,
}

// T resolves a key in the given locale, falling back to English and
// finally to the key itself.
func T(locale string, key Key) string {
	if table, ok := Locales[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := english[key]; ok {
		return msg
	}
	return string(key)
}
