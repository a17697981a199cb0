package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swasthya-bot/internal/content"
	"swasthya-bot/internal/intent"
	"swasthya-bot/internal/lang"
	"swasthya-bot/internal/llm"
	"swasthya-bot/internal/store"
)

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string, _ lang.Language) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

type fakeClassifier struct {
	result *intent.Intent
	calls  int
	texts  []string
}

func (c *fakeClassifier) Classify(_ context.Context, text string, _ lang.Language) (*intent.Intent, error) {
	c.calls++
	c.texts = append(c.texts, text)
	return c.result, nil
}

func newTestProfile(t *testing.T) *store.UserProfile {
	t.Helper()
	s := store.New(lang.NewDetector())
	return s.Ensure("919876543210", "please tell me about vaccination schedules")
}

func newTestResolver(gen *fakeGenerator, cls *fakeClassifier) *Resolver {
	return NewResolver(gen, cls, zap.NewNop())
}

func TestResolveHelp(t *testing.T) {
	r := newTestResolver(&fakeGenerator{}, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Help}, "help", p)
	assert.Equal(t, en.Welcome+"\n"+en.Help, got)
}

func TestResolveStaticInfo(t *testing.T) {
	r := newTestResolver(&fakeGenerator{}, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	assert.Equal(t, en.HygieneInfo, r.Resolve(context.Background(), intent.Intent{Name: intent.Hygiene}, "", p))
	assert.Equal(t, en.VaccinesInfo, r.Resolve(context.Background(), intent.Intent{Name: intent.Vaccines}, "", p))
}

func TestResolveSymptomsKnowledgeBaseFirst(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	r := newTestResolver(gen, &fakeClassifier{})
	p := newTestProfile(t)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Symptoms, Disease: "malaria"}, "", p)
	assert.Contains(t, got, "malaria")
	assert.Contains(t, got, "fever")
	// A disease present in the static table never reaches the generator.
	assert.Zero(t, gen.calls)
}

func TestResolveSymptomsDiseaseLowercased(t *testing.T) {
	gen := &fakeGenerator{}
	r := newTestResolver(gen, &fakeClassifier{})
	p := newTestProfile(t)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Symptoms, Disease: "Malaria"}, "", p)
	assert.Contains(t, got, "malaria")
	assert.Zero(t, gen.calls)
}

func TestResolveSymptomsGenerativeFallback(t *testing.T) {
	gen := &fakeGenerator{reply: "Chikungunya commonly causes joint pain and fever."}
	r := newTestResolver(gen, &fakeClassifier{})
	p := newTestProfile(t)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Symptoms, Disease: "chikungunya"}, "", p)
	assert.Equal(t, gen.reply, got)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "chikungunya")
	assert.Contains(t, gen.prompts[0], "non-diagnostic")
}

func TestResolveSymptomsPlaceholderWhenBackendDown(t *testing.T) {
	gen := &fakeGenerator{err: llm.ErrUnavailable}
	r := newTestResolver(gen, &fakeClassifier{})
	p := newTestProfile(t)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Symptoms, Disease: "chikungunya"}, "", p)
	assert.Contains(t, got, "chikungunya")
	assert.Contains(t, got, "fever")
	assert.Contains(t, got, "cough")
}

func TestResolveSubscribeUnsubscribe(t *testing.T) {
	r := newTestResolver(&fakeGenerator{}, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Subscribe}, "", p)
	assert.Equal(t, en.Subscribed, got)
	assert.True(t, p.Subscribed())

	got = r.Resolve(context.Background(), intent.Intent{Name: intent.Unsubscribe}, "", p)
	assert.Equal(t, en.Unsubscribed, got)
	assert.False(t, p.Subscribed())
}

func TestResolveSetLocation(t *testing.T) {
	r := newTestResolver(&fakeGenerator{}, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.SetLocation, Area: " pune east "}, "", p)
	assert.Equal(t, en.LocationSaved, got)
	assert.Equal(t, "pune east", p.Location())

	// Missing area is a "didn't understand", not an error.
	got = r.Resolve(context.Background(), intent.Intent{Name: intent.SetLocation}, "", p)
	assert.Equal(t, en.Unknown, got)
	assert.Equal(t, "pune east", p.Location())
}

func TestResolveAddChild(t *testing.T) {
	r := newTestResolver(&fakeGenerator{}, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.AddChild, ChildName: "asha", DOB: "2023-01-15"}, "", p)
	assert.Equal(t, en.AddedChildText("asha"), got)
	deps := p.Dependents()
	require.Len(t, deps, 1)
	assert.Equal(t, "asha", deps[0].Name)

	// Incomplete add child nudges with the help text.
	got = r.Resolve(context.Background(), intent.Intent{Name: intent.AddChild}, "", p)
	assert.Equal(t, en.Help, got)
	assert.Len(t, p.Dependents(), 1)

	// An unparseable date from the classifier is treated as incomplete.
	got = r.Resolve(context.Background(), intent.Intent{Name: intent.AddChild, ChildName: "ravi", DOB: "2023-13-99"}, "", p)
	assert.Equal(t, en.Help, got)
	assert.Len(t, p.Dependents(), 1)
}

func TestUnknownEscalatesToClassifierFirst(t *testing.T) {
	gen := &fakeGenerator{reply: "generic guidance"}
	cls := &fakeClassifier{result: &intent.Intent{Name: intent.Subscribe}}
	r := newTestResolver(gen, cls)
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "sign me up for alerts", p)
	assert.Equal(t, en.Subscribed, got)
	assert.True(t, p.Subscribed())
	// Classifier consulted exactly once over the raw text; generator never.
	require.Equal(t, 1, cls.calls)
	assert.Equal(t, "sign me up for alerts", cls.texts[0])
	assert.Zero(t, gen.calls)
}

func TestUnknownWelcomesFirstTimeUser(t *testing.T) {
	gen := &fakeGenerator{reply: "generic guidance"}
	r := newTestResolver(gen, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "blah", p)
	assert.Equal(t, en.Welcome+"\n"+en.Help, got)
	assert.True(t, p.Welcomed())
	assert.Zero(t, gen.calls)
}

func TestUnknownGenerativeFallbackAfterWelcome(t *testing.T) {
	gen := &fakeGenerator{reply: "generic guidance"}
	cls := &fakeClassifier{}
	r := newTestResolver(gen, cls)
	p := newTestProfile(t)

	// First unknown message: welcome. Second: generative fallback.
	r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "blah", p)
	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "my head hurts", p)
	assert.Equal(t, "generic guidance", got)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "my head hurts")
	// Classifier was consulted before the generator both times.
	assert.Equal(t, 2, cls.calls)
}

func TestUnknownStaticFallbackWhenBackendDown(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	r := newTestResolver(gen, &fakeClassifier{})
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "blah", p)
	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "blah again", p)
	assert.Equal(t, en.Unknown, got)
}

func TestClassifierUnknownFallsThrough(t *testing.T) {
	gen := &fakeGenerator{reply: "generic guidance"}
	cls := &fakeClassifier{result: &intent.Intent{Name: intent.Unknown}}
	r := newTestResolver(gen, cls)
	p := newTestProfile(t)
	en := content.ForLanguage(lang.English)

	got := r.Resolve(context.Background(), intent.Intent{Name: intent.Unknown}, "blah", p)
	assert.Equal(t, en.Welcome+"\n"+en.Help, got)
}
