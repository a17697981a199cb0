// Package content holds the static multilingual resource bundle: user-facing
// strings, the symptom knowledge base, and the childhood vaccination
// schedule. It is data, not logic; everything here is loaded once at
// process start and never mutated.
package content

import (
	"fmt"
	"strings"

	"swasthya-bot/internal/lang"
)

// Strings is the user-facing text bundle for one language. Entries with
// placeholders are fmt templates.
type Strings struct {
	Welcome       string
	Help          string
	Unknown       string
	Subscribed    string
	Unsubscribed  string
	LocationSaved string
	VaccinesInfo  string
	HygieneInfo   string
	// AddedChild takes the child's name.
	AddedChild string
	// OutbreakAlert takes the area and the current date string.
	OutbreakAlert string
	// ReminderPrefix leads every vaccination reminder.
	ReminderPrefix string
	// SymptomsPrefix takes the disease name.
	SymptomsPrefix string
}

// ForLanguage returns the string bundle for tag, falling back to the
// default language for unknown tags.
func ForLanguage(tag lang.Language) Strings {
	if s, ok := i18n[tag]; ok {
		return s
	}
	return i18n[lang.Default]
}

// AddedChildText renders the add-child confirmation for the given name.
func (s Strings) AddedChildText(name string) string {
	return fmt.Sprintf(s.AddedChild, name)
}

// OutbreakAlertText renders the localized alert line for an area and date.
func (s Strings) OutbreakAlertText(area, date string) string {
	return fmt.Sprintf(s.OutbreakAlert, area, date)
}

// SymptomsText renders the symptom list reply for a disease.
func (s Strings) SymptomsText(disease string, symptoms []string) string {
	return fmt.Sprintf(s.SymptomsPrefix, disease) + "\n- " + strings.Join(symptoms, "\n- ")
}

// ReminderText renders a vaccination reminder for a child and dose.
func (s Strings) ReminderText(childName, vaccine string) string {
	return fmt.Sprintf("%s %s is due for %s.", s.ReminderPrefix, childName, vaccine)
}

// Symptoms looks up the symptom list for (tag, disease) in the knowledge
// base, then in the default language's table. The boolean reports a hit;
// disease must already be lowercased.
func Symptoms(tag lang.Language, disease string) ([]string, bool) {
	if byDisease, ok := symptomsKB[tag]; ok {
		if list, ok := byDisease[disease]; ok {
			return list, true
		}
	}
	if list, ok := symptomsKB[lang.Default][disease]; ok {
		return list, true
	}
	return nil, false
}

// PlaceholderSymptoms is the minimal static fallback when both the
// knowledge base and the generative backend come up empty.
var PlaceholderSymptoms = []string{"fever", "cough", "sore throat"}

// ScheduleEntry is one dose in the childhood vaccination schedule.
type ScheduleEntry struct {
	Name          string
	DueOffsetDays int
}

// VaccinationSchedule is a simplified national immunization timetable.
// Real schedules vary; consult official sources.
var VaccinationSchedule = []ScheduleEntry{
	{Name: "BCG", DueOffsetDays: 0},
	{Name: "OPV-0", DueOffsetDays: 0},
	{Name: "HepB-1", DueOffsetDays: 0},
	{Name: "HepB-2", DueOffsetDays: 28},
	{Name: "DPT-1", DueOffsetDays: 42}, // 6 weeks
	{Name: "OPV-1", DueOffsetDays: 42},
	{Name: "MMR-1", DueOffsetDays: 270}, // 9 months
}
