package i18n

var english = map[Key]string{
	KeyFormTitle:         "Contribute language data",
	KeyStepLanguage:      "Choose a language",
	KeyStepContributor:   "Your details",
	KeyStepContent:       "Add your content",
	KeyStepConsent:       "Consent and submit",
	KeySubmit:            "Submit contribution",
	KeySubmitSuccess:     "Thank you! Your submission ID is %s",
	KeySubmitFailure:     "Submission failed, please try again",
	KeyConsentLabel:      "I agree to share this content for open language datasets",
	KeyFeedbackTitle:     "Send us feedback",
	KeyFeedbackSent:      "Thank you for your feedback!",
	KeyLanguageTamil:     "Tamil",
	KeyLanguageSinhala:   "Sinhala",
	KeyLanguageEnglish:   "English",
	KeyUploadDocuments:   "Upload documents (txt, pdf, docx, csv)",
	KeyUploadPhotos:      "Upload photos (png, jpg, jpeg, gif, bmp, webp)",
	KeyStatsContributors: "Contributors",
	KeyStatsDatasets:     "Datasets",
}

var tamil = map[Key]string{
	KeyFormTitle:         "மொழித் தரவை பங்களியுங்கள்",
	KeyStepLanguage:      "மொழியைத் தேர்ந்தெடுக்கவும்",
	KeyStepContributor:   "உங்கள் விவரங்கள்",
	KeyStepContent:       "உங்கள் உள்ளடக்கத்தைச் சேர்க்கவும்",
	KeyStepConsent:       "ஒப்புதல் மற்றும் சமர்ப்பிப்பு",
	KeySubmit:            "பங்களிப்பைச் சமர்ப்பிக்கவும்",
	KeySubmitSuccess:     "நன்றி! உங்கள் சமர்ப்பிப்பு எண் %s",
	KeySubmitFailure:     "சமர்ப்பிப்பு தோல்வியடைந்தது, மீண்டும் முயற்சிக்கவும்",
	KeyConsentLabel:      "திறந்த மொழித் தரவுத்தொகுப்புகளுக்காக இந்த உள்ளடக்கத்தைப் பகிர ஒப்புக்கொள்கிறேன்",
	KeyFeedbackTitle:     "உங்கள் கருத்தை அனுப்புங்கள்",
	KeyFeedbackSent:      "உங்கள் கருத்துக்கு நன்றி!",
	KeyLanguageTamil:     "தமிழ்",
	KeyLanguageSinhala:   "சிங்களம்",
	KeyLanguageEnglish:   "ஆங்கிலம்",
	KeyUploadDocuments:   "ஆவணங்களைப் பதிவேற்றவும் (txt, pdf, docx, csv)",
	KeyUploadPhotos:      "புகைப்படங்களைப் பதிவேற்றவும் (png, jpg, jpeg, gif, bmp, webp)",
	KeyStatsContributors: "பங்களிப்பாளர்கள்",
	KeyStatsDatasets:     "தரவுத்தொகுப்புகள்",
}

var sinhala = map[Key]string{
	KeyFormTitle:         "භාෂා දත්ත දායක කරන්න",
	KeyStepLanguage:      "භාෂාවක් තෝරන්න",
	KeyStepContributor:   "ඔබගේ විස්තර",
	KeyStepContent:       "ඔබගේ අන්තර්ගතය එක් කරන්න",
	KeyStepConsent:       "කැමැත්ත සහ ඉදිරිපත් කිරීම",
	KeySubmit:            "දායකත්වය ඉදිරිපත් කරන්න",
	KeySubmitSuccess:     "ස්තූතියි! ඔබගේ ඉදිරිපත් කිරීමේ අංකය %s",
	KeySubmitFailure:     "ඉදිරිපත් කිරීම අසාර්ථකයි, නැවත උත්සාහ කරන්න",
	KeyConsentLabel:      "විවෘත භාෂා දත්ත කට්ටල සඳහා මෙම අන්තර්ගතය බෙදා ගැනීමට මම එකඟ වෙමි",
	KeyFeedbackTitle:     "ඔබේ ප්‍රතිචාරය එවන්න",
	KeyFeedbackSent:      "ඔබේ ප්‍රතිචාරයට ස්තූතියි!",
	KeyLanguageTamil:     "දෙමළ",
	KeyLanguageSinhala:   "සිංහල",
	KeyLanguageEnglish:   "ඉංග්‍රීසි",
	KeyUploadDocuments:   "ලේඛන උඩුගත කරන්න (txt, pdf, docx, csv)",
	KeyUploadPhotos:      "ඡායාරූප උඩුගත කරන්න (png, jpg, jpeg, gif, bmp, webp)",
	KeyStatsContributors: "දායකයින්",
	KeyStatsDatasets:     "දත්ත කට්ටල",
}
