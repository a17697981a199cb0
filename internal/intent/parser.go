package intent

import (
	"regexp"
	"strings"
)

// addChildPattern matches "add child <name> <YYYY-MM-DD>". The date is
// matched by shape only; calendar validation happens when the dependent
// is created.
var addChildPattern = regexp.MustCompile(`^add child\s+(\S+)\s+(\d{4}-\d{2}-\d{2})`)

// Parse turns a normalized (trimmed, lowercased) message into an Intent.
// Rules are checked in priority order and the first match wins; the
// ordering is part of the contract so that inputs like "vaccines" and
// "vaccine" resolve predictably. Parse is pure and deterministic.
func Parse(text string) Intent {
	if text == "" {
		return Intent{Name: Unknown}
	}
	if text == "hi" || text == "hello" || text == "help" {
		return Intent{Name: Help}
	}
	if strings.HasPrefix(text, "symptoms") {
		parts := strings.Fields(text)
		disease := strings.TrimSpace(strings.Join(parts[1:], " "))
		if disease == "" {
			disease = "influenza"
		}
		return Intent{Name: Symptoms, Disease: disease}
	}
	if strings.Contains(text, "hygiene") || strings.Contains(text, "prevent") || strings.Contains(text, "clean") {
		return Intent{Name: Hygiene}
	}
	if strings.HasPrefix(text, "vaccines") || strings.Contains(text, "vaccine") {
		return Intent{Name: Vaccines}
	}
	if text == "subscribe" {
		return Intent{Name: Subscribe}
	}
	if text == "unsubscribe" {
		return Intent{Name: Unsubscribe}
	}
	if strings.HasPrefix(text, "set location") {
		area := strings.TrimSpace(strings.TrimPrefix(text, "set location"))
		return Intent{Name: SetLocation, Area: area}
	}
	if strings.HasPrefix(text, "add child") {
		if m := addChildPattern.FindStringSubmatch(text); m != nil {
			return Intent{Name: AddChild, ChildName: m[1], DOB: m[2]}
		}
		// Incomplete add child: the caller nudges the user toward the
		// correct syntax instead of failing.
		return Intent{Name: AddChild}
	}
	return Intent{Name: Unknown}
}

// Normalize applies the canonical normalization expected by Parse.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
