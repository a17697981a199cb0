package lang

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Language is an internal language tag for the bot's supported set.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Bengali Language = "bn"
	Telugu  Language = "te"
	Marathi Language = "mr"
)

// Default is used whenever detection is indeterminate or yields an
// unsupported language.
const Default = English

// iso6393 maps detector output (ISO 639-3) to internal tags. Languages
// outside this allow-list are treated as undetected.
var iso6393 = map[string]Language{
	"eng": English,
	"hin": Hindi,
	"ben": Bengali,
	"tel": Telugu,
	"mar": Marathi,
}

// minDetectLength is the minimum rune count for a detection attempt.
// Shorter inputs are too ambiguous for trigram language identification.
const minDetectLength = 3

// Detector performs statistical language identification over free text.
type Detector struct{}

// NewDetector constructs a Detector.
func NewDetector() *Detector { return &Detector{} }

// Detect identifies the language of text. The boolean reports whether the
// result is a confident detection of a supported language; when it is
// false the returned tag is Default. Detect never fails.
func (d *Detector) Detect(text string) (Language, bool) {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < minDetectLength {
		return Default, false
	}
	info := whatlanggo.Detect(trimmed)
	tag, ok := iso6393[info.Lang.Iso6393()]
	if !ok {
		return Default, false
	}
	return tag, true
}

// Supported reports whether tag is one of the bot's supported languages.
func Supported(tag Language) bool {
	for _, l := range iso6393 {
		if l == tag {
			return true
		}
	}
	return false
}
