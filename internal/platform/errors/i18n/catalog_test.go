package i18n

import "testing"

func TestGetCatalogMatching(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "en-US"},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"pt-PT", "pt-BR"},
		{"en", "en-US"},
		{"en-GB", "en-US"},
		{"fr-FR", "en-US"},
		{"", "en-US"},
		{"   ", "en-US"},
		{"not-a-locale", "en-US"},
	}

	for _, tt := range tests {
		if got := GetCatalog(tt.locale).Locale(); got != tt.want {
			t.Errorf("GetCatalog(%q) = %s, want %s", tt.locale, got, tt.want)
		}
	}
}

func TestFormatTemplatesMetadata(t *testing.T) {
	catalog := GetCatalog("en-US")

	got := catalog.Format(CodeProjectNotFound, map[string]string{"project_id": "7"})
	if got != "Project 7 was not found." {
		t.Fatalf("formatted = %q", got)
	}

	// Missing metadata renders the variable empty rather than failing.
	got = catalog.Format(CodeProjectNotFound, nil)
	if got != "Project  was not found." {
		t.Fatalf("formatted without metadata = %q", got)
	}

	// Unknown codes fall back to the code itself.
	if got := catalog.Format("BOGUS_CODE", nil); got != "BOGUS_CODE" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range messagesEnUS {
		if _, ok := messagesPtBR[code]; !ok {
			t.Errorf("pt-BR catalog is missing %s", code)
		}
	}
	for code := range messagesPtBR {
		if _, ok := messagesEnUS[code]; !ok {
			t.Errorf("en-US catalog is missing %s", code)
		}
	}
}
