package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want language.Tag
	}{
		{"empty falls back", "", language.Japanese},
		{"japanese tag", "ja", language.Japanese},
		{"japanese locale", "ja_JP.UTF-8", language.Japanese},
		{"english tag", "en", language.English},
		{"english region", "en-GB", language.English},
		{"english locale", "en_US.UTF-8", language.English},
		{"posix default", "C", language.Japanese},
		{"garbage", "not a language", language.Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Lookup(tt.lang)
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m.Tag)
		})
	}
}

func TestDefault(t *testing.T) {
	m := Default()
	require.NotNil(t, m)
	assert.Equal(t, language.Japanese, m.Tag)
	assert.Equal(t, "平均点", m.AverageLabel)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en-US", normalize("en_US.UTF-8"))
	assert.Equal(t, "de-DE", normalize("de_DE@euro"))
	assert.Equal(t, "", normalize("POSIX"))
	assert.Equal(t, "ja", normalize("  ja "))
}

func TestCatalogsComplete(t *testing.T) {
	for _, m := range catalogs {
		t.Run(m.Tag.String(), func(t *testing.T) {
			assert.NotEmpty(t, m.CountPrompt)
			assert.Contains(t, m.ScorePrompt, "%d")
			assert.Contains(t, m.CountTooLarge, "%d")
			assert.NotEmpty(t, m.CountNotPositive)
			assert.Contains(t, m.ScoreOutOfRange, "%d")
			assert.Contains(t, m.NotANumber, "%q")
			assert.NotEmpty(t, m.AverageLabel)
			assert.NotEmpty(t, m.MaxLabel)
			assert.NotEmpty(t, m.MinLabel)
		})
	}
}
