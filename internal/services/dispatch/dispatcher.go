// Package dispatch implements the request-moderation layer between inbound
// player text and the outbound Gemini call: input filtering, persona
// selection by message shape, a global outbound throttle, and a
// time-expiring response cache keyed by input text.
package dispatch

import (
	"context"
	"strings"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/cache"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Completer is the external text-completion capability.
type Completer interface {
	Generate(ctx context.Context, systemPrompt, userText string, temperature float32) (string, error)
}

// trivialGreetings are answered with a canned reply, skipping the API.
var trivialGreetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
}

// Dispatcher routes player text to the completion capability. The cache and
// throttle are shared, explicitly-owned state: all concurrent requests see
// the same instances.
type Dispatcher struct {
	defaults  models.GenerationDefaults
	completer Completer
	cache     cache.Store
	throttle  *Throttle
}

// NewDispatcher creates a Dispatcher around the given collaborators.
func NewDispatcher(defaults models.GenerationDefaults, completer Completer, store cache.Store, throttle *Throttle) *Dispatcher {
	return &Dispatcher{
		defaults:  defaults,
		completer: completer,
		cache:     store,
		throttle:  throttle,
	}
}

// Dispatch processes one player message and returns the reply text.
//
// Round-start messages (prefix match) go through the cache and the outbound
// throttle; general messages call the API directly every time. The
// asymmetry is deliberate: round-start announcements are identical across a
// server's players and worth caching, free-form queries are not.
func (d *Dispatcher) Dispatch(ctx context.Context, userText string) (string, error) {
	text := strings.TrimSpace(userText)

	if text == "" {
		fiberlog.Info("Blocked empty query, no Gemini call")
		return "", nil
	}

	if len(text) < 5 {
		if _, ok := trivialGreetings[strings.ToLower(text)]; ok {
			fiberlog.Infof("Blocked short, generic query: %q, no Gemini call", text)
			return models.GreetingReply, nil
		}
	}

	if strings.HasPrefix(text, models.RoundStartPrefix) {
		return d.dispatchRoundStart(ctx, text)
	}
	return d.dispatchGeneral(ctx, text)
}

func (d *Dispatcher) dispatchRoundStart(ctx context.Context, text string) (string, error) {
	fiberlog.Info("Using ROUND START system prompt")
	persona := models.RoundStartPersona()

	// Cache key is the full trimmed text, not just the prefix.
	if reply, ok := d.cache.Get(ctx, text); ok {
		fiberlog.Infof("Serving cached response for: %s", text)
		return reply, nil
	}

	d.throttle.Wait()

	reply, err := d.completer.Generate(ctx, persona.SystemPrompt, text, persona.Temperature)
	if err != nil {
		fiberlog.Errorf("Gemini call failed (round start): %v", err)
		return "", err
	}

	reply = strings.TrimSpace(reply)
	d.cache.Set(ctx, text, reply)
	fiberlog.Infof("Caching new response for: %s", text)

	return reply, nil
}

func (d *Dispatcher) dispatchGeneral(ctx context.Context, text string) (string, error) {
	fiberlog.Info("Using GENERAL system prompt")
	persona := models.GeneralPersona(d.defaults)

	reply, err := d.completer.Generate(ctx, persona.SystemPrompt, text, persona.Temperature)
	if err != nil {
		fiberlog.Errorf("Gemini call failed (general): %v", err)
		return "", err
	}

	return strings.TrimSpace(reply), nil
}
