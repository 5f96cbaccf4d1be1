package translations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("fr"))
	assert.False(t, Supported("es"))
	assert.False(t, Supported(""))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Message sent successfully!", T("message_sent", "en"))
	assert.Equal(t, "Message envoyé avec succès!", T("message_sent", "fr"))

	t.Run("unsupported language falls back to English", func(t *testing.T) {
		assert.Equal(t, "Message sent successfully!", T("message_sent", "es"))
	})

	t.Run("unknown key falls back to the key itself", func(t *testing.T) {
		assert.Equal(t, "no_such_key", T("no_such_key", "en"))
	})
}

func TestAll(t *testing.T) {
	dict, ok := All("fr")
	require.True(t, ok)
	assert.Equal(t, "Accueil", dict["nav_home"])

	// Callers get a copy, not the shared dictionary.
	dict["nav_home"] = "mutated"
	fresh, _ := All("fr")
	assert.Equal(t, "Accueil", fresh["nav_home"])

	_, ok = All("de")
	assert.False(t, ok)
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	assert.ElementsMatch(t, []string{"en", "fr"}, langs)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name           string
		countryCode    string
		acceptLanguage string
		want           string
	}{
		{"francophone country", "CM", "", "fr"},
		{"lowercase country code", "fr", "", "fr"},
		{"accept-language header", "", "fr-FR,fr;q=0.9", "fr"},
		{"header applies when country is not francophone", "US", "fr", "fr"},
		{"anglophone default", "US", "en-US", "en"},
		{"nothing known", "", "", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.countryCode, tt.acceptLanguage))
		})
	}
}
