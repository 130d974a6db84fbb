// Package chat sequences the per-turn pipeline and owns the session's
// critical section.
package chat

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/moodloop/amica/internal/chatlog"
	"github.com/moodloop/amica/internal/conversation"
	"github.com/moodloop/amica/internal/models"
	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
	"github.com/moodloop/amica/internal/session"
)

// ApologyMessage is surfaced verbatim when a generation call fails.
const ApologyMessage = "Sorry, I couldn't generate a response."

const (
	idleThreshold      = 60 * time.Second
	starterProbability = 0.7

	starterNudge = "The user has been quiet for a while. Start a fresh, natural " +
		"topic yourself, in character, with a single short message."
)

// Options wires an orchestrator.
type Options struct {
	Engine      *mood.Engine
	Tracker     *objective.Tracker
	Generator   models.Generator
	Store       session.Store
	Transcript  *chatlog.Transcript
	State       *session.State
	Triggers    []string
	PersonaName string
	SaveEvery   int
	Logger      zerolog.Logger
}

// Orchestrator runs the turn pipeline. All session mutation happens
// under one mutex, end to end per turn; the idle starter shares it, so a
// starter never interleaves with an in-flight user turn.
type Orchestrator struct {
	mu sync.Mutex

	engine      *mood.Engine
	tracker     *objective.Tracker
	generator   models.Generator
	store       session.Store
	transcript  *chatlog.Transcript
	state       *session.State
	triggers    []string
	personaName string
	saveEvery   int
	logger      zerolog.Logger

	nowFunc func() time.Time
	randFn  func() float64
}

// New returns an orchestrator over already-initialized collaborators.
func New(opts Options) *Orchestrator {
	saveEvery := opts.SaveEvery
	if saveEvery <= 0 {
		saveEvery = 3
	}
	personaName := opts.PersonaName
	if personaName == "" {
		personaName = "agent"
	}
	return &Orchestrator{
		engine:      opts.Engine,
		tracker:     opts.Tracker,
		generator:   opts.Generator,
		store:       opts.Store,
		transcript:  opts.Transcript,
		state:       opts.State,
		triggers:    opts.Triggers,
		personaName: personaName,
		saveEvery:   saveEvery,
		logger:      opts.Logger,
		nowFunc:     time.Now,
		randFn:      rand.Float64,
	}
}

// HandleTurn processes one user message and returns the reply text. A
// generation failure returns the fixed apology; mood and the appended
// user turn stay as they were at call time, while the objective set and
// interaction count are left untouched.
func (o *Orchestrator) HandleTurn(ctx context.Context, userText string) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.engine.Update(o.state.Mood, userText, o.triggers)
	o.state.RecordMood(next)

	o.state.Window.Append(conversation.RoleUser, userText)
	o.state.Window.EnforceCapacity()
	o.logEvent("user", userText)

	reply, err := o.generator.Generate(ctx, o.state.Window.Contents())
	if err != nil {
		o.logger.Error().Err(err).Str("provider", o.generator.Name()).Msg("generation call failed")
		o.logEvent("system", "generation error: "+err.Error())
		return ApologyMessage
	}

	o.state.Window.Append(conversation.RoleModel, reply)
	o.tracker.Update(&o.state.Objectives, o.state.Topics, o.state.Intents, userText, reply)
	o.state.NoteTopicsDiscussed()
	o.state.InteractionCount++
	o.state.LastInteractionAt = o.nowFunc()
	o.logEvent(o.personaName, reply)

	if o.state.InteractionCount%o.saveEvery == 0 {
		o.save(ctx)
	}
	return reply
}

// MaybeStartConversation speculatively opens a topic after an idle gap.
// The nudge content is ephemeral: it rides the generation request but is
// never stored in the window.
func (o *Orchestrator) MaybeStartConversation(ctx context.Context) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.nowFunc()
	if o.state.LastInteractionAt.IsZero() || now.Sub(o.state.LastInteractionAt) < idleThreshold {
		return "", false
	}
	if o.randFn() >= starterProbability {
		return "", false
	}

	contents := append(o.state.Window.Contents(), &genai.Content{
		Role:  string(conversation.RoleUser),
		Parts: []*genai.Part{{Text: starterNudge}},
	})
	reply, err := o.generator.Generate(ctx, contents)
	if err != nil {
		o.logger.Warn().Err(err).Msg("conversation starter failed")
		return "", false
	}

	o.state.Window.Append(conversation.RoleModel, reply)
	o.state.Window.EnforceCapacity()
	o.state.LastInteractionAt = now
	o.logEvent(o.personaName, reply)
	return reply, true
}

// RunIdleStarter polls for idle gaps until the context ends, emitting
// any starter line it produces.
func (o *Orchestrator) RunIdleStarter(ctx context.Context, emit func(string)) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if reply, ok := o.MaybeStartConversation(ctx); ok {
				emit(reply)
			}
		}
	}
}

// Shutdown flushes the session once and records the end of the session.
func (o *Orchestrator) Shutdown(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.save(ctx)
	o.logEvent("system", "session ended")
}

// Mood returns the current mood for display.
func (o *Orchestrator) Mood() mood.Mood {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Mood
}

// save persists a snapshot; durability failures are logged and the
// session continues on in-memory state.
func (o *Orchestrator) save(ctx context.Context) {
	snap := o.state.Snapshot(o.nowFunc())
	if err := o.store.Save(ctx, snap); err != nil {
		o.logger.Error().Err(err).Msg("failed to persist session snapshot")
	}
}

func (o *Orchestrator) logEvent(speaker, message string) {
	if o.transcript == nil {
		return
	}
	if err := o.transcript.Event(speaker, message); err != nil {
		o.logger.Warn().Err(err).Msg("failed to append transcript line")
	}
}
