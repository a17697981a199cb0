package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"swasthya-bot/internal/content"
	"swasthya-bot/internal/intent"
	"swasthya-bot/internal/llm"
	"swasthya-bot/internal/store"
)

// Resolver turns a parsed intent and a user profile into reply text. It
// consults the static knowledge base first, escalates unknown intents to
// the AI classifier, and falls back to the generative backend; every path
// ends in a deterministic reply even with both backends down.
type Resolver struct {
	generator  llm.Generator
	classifier llm.Classifier
	logger     *zap.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(generator llm.Generator, classifier llm.Classifier, logger *zap.Logger) *Resolver {
	return &Resolver{generator: generator, classifier: classifier, logger: logger}
}

// Resolve dispatches on the intent name. rawText is the original,
// un-normalized message; it is only used on the unknown-intent escalation
// path where the classifier and the generative backend see the user's own
// words.
func (r *Resolver) Resolve(ctx context.Context, it intent.Intent, rawText string, p *store.UserProfile) string {
	if it.Name == intent.Unknown {
		return r.resolveUnknown(ctx, rawText, p)
	}
	return r.resolveKnown(ctx, it, p)
}

func (r *Resolver) resolveKnown(ctx context.Context, it intent.Intent, p *store.UserProfile) string {
	t := content.ForLanguage(p.Language())
	switch it.Name {
	case intent.Help:
		return t.Welcome + "\n" + t.Help
	case intent.Hygiene:
		return t.HygieneInfo
	case intent.Vaccines:
		return t.VaccinesInfo
	case intent.Symptoms:
		disease := strings.ToLower(it.Disease)
		if disease == "" {
			disease = "influenza"
		}
		return r.symptomsReply(ctx, p, t, disease)
	case intent.Subscribe:
		p.SetSubscribed(true)
		return t.Subscribed
	case intent.Unsubscribe:
		p.SetSubscribed(false)
		return t.Unsubscribed
	case intent.SetLocation:
		area := strings.TrimSpace(it.Area)
		if area == "" {
			// Missing area reads as "didn't understand", not an error.
			return t.Unknown
		}
		p.SetLocation(area)
		return t.LocationSaved
	case intent.AddChild:
		if it.ChildName == "" || it.DOB == "" {
			// Incomplete add child nudges toward the correct syntax.
			return t.Help
		}
		dob, err := time.Parse("2006-01-02", it.DOB)
		if err != nil {
			return t.Help
		}
		p.AddDependent(it.ChildName, dob)
		return t.AddedChildText(it.ChildName)
	default:
		return t.Unknown
	}
}

// symptomsReply answers a symptoms query: knowledge base first (profile
// language, then the default language), then the generative backend, then
// a minimal static placeholder.
func (r *Resolver) symptomsReply(ctx context.Context, p *store.UserProfile, t content.Strings, disease string) string {
	if kb, ok := content.Symptoms(p.Language(), disease); ok {
		return t.SymptomsText(disease, kb)
	}
	prompt := fmt.Sprintf("List common symptoms and basic prevention tips for %s. Keep it general and non-diagnostic.", disease)
	text, err := r.generator.Generate(ctx, prompt, p.Language())
	if err != nil || text == "" {
		if err != nil {
			r.logger.Debug("generative symptoms fallback unavailable", zap.String("disease", disease), zap.Error(err))
		}
		return t.SymptomsText(disease, content.PlaceholderSymptoms)
	}
	return text
}

// resolveUnknown escalates a message the rule parser could not place:
// first the AI classifier over the raw text, then a one-time welcome, then
// the open-ended generative fallback, then the static "didn't understand".
func (r *Resolver) resolveUnknown(ctx context.Context, rawText string, p *store.UserProfile) string {
	t := content.ForLanguage(p.Language())

	ai, err := r.classifier.Classify(ctx, rawText, p.Language())
	if err != nil {
		r.logger.Debug("intent classifier failed", zap.Error(err))
	}
	if ai != nil && ai.Name != intent.Unknown {
		return r.resolveKnown(ctx, *ai, p)
	}

	if p.FirstWelcome() {
		return t.Welcome + "\n" + t.Help
	}

	prompt := fmt.Sprintf("User says: %q. Provide brief, non-diagnostic health guidance relevant to India. Include prevention and when to seek medical care.", rawText)
	text, err := r.generator.Generate(ctx, prompt, p.Language())
	if err != nil || text == "" {
		return t.Unknown
	}
	return text
}
