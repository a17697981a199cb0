package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthya-bot/internal/lang"
)

func TestForLanguageFallsBackToDefault(t *testing.T) {
	assert.Equal(t, i18n[lang.English], ForLanguage(lang.Language("fr")))
	assert.Equal(t, i18n[lang.Telugu], ForLanguage(lang.Telugu))
}

func TestEveryLanguageHasACompleteBundle(t *testing.T) {
	for tag, s := range i18n {
		assert.NotEmpty(t, s.Welcome, "welcome for %s", tag)
		assert.NotEmpty(t, s.Help, "help for %s", tag)
		assert.NotEmpty(t, s.Unknown, "unknown for %s", tag)
		assert.NotEmpty(t, s.Subscribed, "subscribed for %s", tag)
		assert.NotEmpty(t, s.Unsubscribed, "unsubscribed for %s", tag)
		assert.NotEmpty(t, s.LocationSaved, "location for %s", tag)
		assert.NotEmpty(t, s.VaccinesInfo, "vaccines for %s", tag)
		assert.NotEmpty(t, s.HygieneInfo, "hygiene for %s", tag)
		assert.Contains(t, s.AddedChild, "%s", "added child template for %s", tag)
		assert.Contains(t, s.OutbreakAlert, "%s", "alert template for %s", tag)
		assert.NotEmpty(t, s.ReminderPrefix, "reminder prefix for %s", tag)
		assert.Contains(t, s.SymptomsPrefix, "%s", "symptoms template for %s", tag)
	}
}

func TestSymptomsLookup(t *testing.T) {
	// Direct hit in the profile language.
	list, ok := Symptoms(lang.Hindi, "malaria")
	require.True(t, ok)
	assert.NotEmpty(t, list)

	// Miss in the profile language falls through to the default table.
	_, ok = Symptoms(lang.Language("fr"), "dengue")
	assert.True(t, ok)

	// Unknown disease misses everywhere.
	_, ok = Symptoms(lang.English, "chikungunya")
	assert.False(t, ok)
}

func TestSymptomsTextRendering(t *testing.T) {
	s := ForLanguage(lang.English)
	got := s.SymptomsText("dengue", []string{"high fever", "severe headache"})
	assert.Equal(t, "Common symptoms of dengue:\n- high fever\n- severe headache", got)
}

func TestVaccinationScheduleShape(t *testing.T) {
	byName := map[string]int{}
	for _, e := range VaccinationSchedule {
		byName[e.Name] = e.DueOffsetDays
	}
	assert.Equal(t, 0, byName["BCG"])
	assert.Equal(t, 42, byName["DPT-1"])
	assert.Equal(t, 42, byName["OPV-1"])
	assert.Equal(t, 28, byName["HepB-2"])
	assert.Equal(t, 270, byName["MMR-1"])
}
