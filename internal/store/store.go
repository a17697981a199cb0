package store

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"swasthya-bot/internal/lang"
)

// Dependent is a child registered for vaccination reminders. remindersSent
// is the dedup ledger of already-issued reminder keys; it only grows.
type Dependent struct {
	Name          string
	DateOfBirth   time.Time
	remindersSent map[string]struct{}
}

// DependentView is a read-only snapshot of a dependent for sweep iteration.
type DependentView struct {
	Name        string
	DateOfBirth time.Time
}

// UserProfile is the per-user state keyed by raw channel identity. All
// mutable fields are guarded by mu; mutation goes through the methods
// below so a single user's updates are never interleaved.
type UserProfile struct {
	// PseudoID is derived once at creation and never changes.
	PseudoID string

	mu           sync.Mutex
	language     lang.Language
	subscribed   bool
	location     string
	dependents   []*Dependent
	lastActiveAt time.Time
	welcomed     bool
}

// Language returns the profile's current language tag.
func (p *UserProfile) Language() lang.Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.language
}

// Subscribed reports whether the user receives outbreak alerts.
func (p *UserProfile) Subscribed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subscribed
}

// Location returns the user's area name, or "" when unset.
func (p *UserProfile) Location() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.location
}

// LastActiveAt returns the time of the user's most recent inbound message.
func (p *UserProfile) LastActiveAt() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastActiveAt
}

// Welcomed reports whether the default welcome has already been sent.
func (p *UserProfile) Welcomed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.welcomed
}

// SetSubscribed flips the outbreak-alert subscription.
func (p *UserProfile) SetSubscribed(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribed = v
}

// SetLocation stores the user's free-text area name.
func (p *UserProfile) SetLocation(area string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = area
}

// AddDependent appends a child record with an empty reminder ledger.
func (p *UserProfile) AddDependent(name string, dob time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dependents = append(p.dependents, &Dependent{
		Name:          name,
		DateOfBirth:   dob,
		remindersSent: make(map[string]struct{}),
	})
}

// Dependents returns a snapshot of the registered children.
func (p *UserProfile) Dependents() []DependentView {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]DependentView, 0, len(p.dependents))
	for _, d := range p.dependents {
		out = append(out, DependentView{Name: d.Name, DateOfBirth: d.DateOfBirth})
	}
	return out
}

// FirstWelcome marks the profile as welcomed and reports whether this call
// was the one that flipped it. Exactly one caller observes true.
func (p *UserProfile) FirstWelcome() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.welcomed {
		return false
	}
	p.welcomed = true
	return true
}

// MarkReminder records a reminder key in the named dependent's ledger and
// reports whether the key was newly added. A false return means the
// reminder was already issued and must be skipped.
func (p *UserProfile) MarkReminder(dependentName, key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.dependents {
		if d.Name != dependentName {
			continue
		}
		if _, seen := d.remindersSent[key]; seen {
			return false
		}
		d.remindersSent[key] = struct{}{}
		return true
	}
	return false
}

// refresh applies the opportunistic per-message updates for an existing
// profile: a confident, different language detection overwrites the stored
// tag, and activity is always refreshed.
func (p *UserProfile) refresh(detected lang.Language, confident bool, now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if confident && detected != p.language {
		p.language = detected
	}
	p.lastActiveAt = now
}

// Store is the process-wide profile store keyed by raw channel identity
// (phone number). It grows without bound; profiles live for the process
// lifetime and are lost on restart.
type Store struct {
	detector *lang.Detector
	now      func() time.Time

	mu       sync.RWMutex
	profiles map[string]*UserProfile
}

// New constructs an empty Store backed by the given language detector.
func New(detector *lang.Detector) *Store {
	return &Store{
		detector: detector,
		now:      time.Now,
		profiles: make(map[string]*UserProfile),
	}
}

// PseudoID derives the stable pseudonymous identifier for a raw identity:
// a one-way digest so logs never carry the identity itself.
func PseudoID(identity string) string {
	sum := sha256.Sum256([]byte(identity))
	return "u_" + hex.EncodeToString(sum[:])[:16]
}

// Ensure returns the profile for identity, creating it on first contact.
// sampleText drives language detection: it seeds the language on creation
// and opportunistically updates it on later messages when detection is
// confident and differs from the stored tag. Activity is always refreshed.
func (s *Store) Ensure(identity, sampleText string) *UserProfile {
	detected, confident := s.detector.Detect(sampleText)

	s.mu.RLock()
	p, ok := s.profiles[identity]
	s.mu.RUnlock()
	if ok {
		p.refresh(detected, confident, s.now())
		return p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[identity]; ok {
		p.refresh(detected, confident, s.now())
		return p
	}
	p = &UserProfile{
		PseudoID:     PseudoID(identity),
		language:     detected,
		lastActiveAt: s.now(),
	}
	s.profiles[identity] = p
	return p
}

// ForEach calls fn for every stored profile. Iteration runs over a
// snapshot of the map so sweeps never hold the store lock while calling
// out to external services.
func (s *Store) ForEach(fn func(identity string, p *UserProfile)) {
	s.mu.RLock()
	type entry struct {
		identity string
		profile  *UserProfile
	}
	snapshot := make([]entry, 0, len(s.profiles))
	for id, p := range s.profiles {
		snapshot = append(snapshot, entry{id, p})
	}
	s.mu.RUnlock()

	for _, e := range snapshot {
		fn(e.identity, e.profile)
	}
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
