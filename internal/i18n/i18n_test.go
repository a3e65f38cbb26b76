package i18n

import "testing"

func TestLocalesCoverAllKeys(t *testing.T) {
	for locale, table := range Locales {
		for _, key := range Keys {
			if _, ok := table[key]; !ok {
				t.Errorf("locale %s is missing key %s", locale, key)
			}
		}
		if len(table) != len(Keys) {
			t.Errorf("locale %s has %d messages, want %d", locale, len(table), len(Keys))
		}
	}
}

func TestTranslateFallsBack(t *testing.T) {
	if got := T("ta", KeyLanguageTamil); got != "தமிழ்" {
		t.Errorf("T(ta, language.tamil) = %q, want தமிழ்", got)
	}
	if got := T("fr", KeySubmit); got != english[KeySubmit] {
		t.Errorf("T(unknown locale) = %q, want English fallback", got)
	}
	if got := T("en", Key("missing.key")); got != "missing.key" {
		t.Errorf("T(missing key) = %q, want the key itself", got)
	}
}
