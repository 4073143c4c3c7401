package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Messages holds the user-facing text for one display language.
// Fields containing verbs are fmt format strings.
type Messages struct {
	Tag language.Tag

	CountPrompt      string
	ScorePrompt      string // %d: 1-based student number
	CountTooLarge    string // %d: capacity
	CountNotPositive string
	ScoreOutOfRange  string // %d: lower bound, %d: upper bound
	NotANumber       string // %q: offending token

	AverageLabel string
	MaxLabel     string
	MinLabel     string
}

var (
	japanese = &Messages{
		Tag:              language.Japanese,
		CountPrompt:      "生徒の人数を入力してください: ",
		ScorePrompt:      "生徒%dの点数を入力してください: ",
		CountTooLarge:    "エラー：生徒の数が多すぎます。(最大 %d 人)",
		CountNotPositive: "エラー：生徒の人数は1以上で入力してください。",
		ScoreOutOfRange:  "エラー：点数は%dから%dの間で入力してください。",
		NotANumber:       "エラー：数値を入力してください。(%q)",
		AverageLabel:     "平均点",
		MaxLabel:         "最大得点",
		MinLabel:         "最少得点",
	}

	english = &Messages{
		Tag:              language.English,
		CountPrompt:      "Enter the number of students: ",
		ScorePrompt:      "Enter the score for student %d: ",
		CountTooLarge:    "Error: too many students (max %d).",
		CountNotPositive: "Error: the number of students must be at least 1.",
		ScoreOutOfRange:  "Error: scores must be between %d and %d.",
		NotANumber:       "Error: please enter a number (%q).",
		AverageLabel:     "Average",
		MaxLabel:         "Max",
		MinLabel:         "Min",
	}

	// first entry is the fallback
	catalogs = []*Messages{japanese, english}

	matcher = language.NewMatcher([]language.Tag{japanese.Tag, english.Tag})
)

// Default returns the catalog used when no language is requested.
func Default() *Messages {
	return catalogs[0]
}

// Lookup returns the catalog that best matches lang. Both BCP 47 tags ("en-US")
// and POSIX locale values ("en_US.UTF-8") are accepted. Unknown values fall
// back to Default.
func Lookup(lang string) *Messages {
	tag, err := language.Parse(normalize(lang))
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(catalogs) {
		return Default()
	}
	return catalogs[idx]
}

func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
