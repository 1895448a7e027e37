// Package chat drives a single conversation session: it classifies each
// submitted message, answers greetings, capability questions, and
// out-of-scope requests locally, and forwards Schengen visa questions to the
// model backend while tracking request status and per-reply latency.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"

	"github.com/anshuchowdary926-eng/visamate/internal/llm"
	"github.com/anshuchowdary926-eng/visamate/internal/models"
	"github.com/anshuchowdary926-eng/visamate/internal/responses"
	"github.com/anshuchowdary926-eng/visamate/internal/scope"
	"github.com/anshuchowdary926-eng/visamate/internal/store"
)

var (
	ErrEmptyMessage   = errors.New("chat: message is empty")
	ErrMessageTooLong = errors.New("chat: message is too long")
	ErrBusy           = errors.New("chat: a reply is already being generated")
	ErrNotGenerating  = errors.New("chat: no reply is being generated")
)

const encodingName = "cl100k_base"

type Config struct {
	// SessionKey is the well-known key the snapshot is persisted under.
	SessionKey string
	// MaxMessageTokens bounds a single user message. Zero disables the check.
	MaxMessageTokens int
	// CapabilityFirstOnly gates the capability short circuit to the first
	// user message of a session.
	CapabilityFirstOnly bool
}

// Manager owns one session. All state is guarded by mu; the only work that
// happens off the owning goroutine is the backend stream, and at most one of
// those is in flight at a time.
type Manager struct {
	store        store.Store
	backend      llm.Generator
	classifier   *scope.Classifier
	logger       *zap.Logger
	systemPrompt string
	sessionKey   string
	maxTokens    int
	encoder      *tiktoken.Tiktoken
	now          func() time.Time

	mu        sync.Mutex
	history   []models.Message
	durations map[string]int64
	status    models.RequestStatus
	cancel    context.CancelFunc
	// generation changes on Clear and retires in-flight replies entirely;
	// call changes on every in-scope submit and marks which stream currently
	// owns status and cancel. A stopped stream keeps its generation, so its
	// partial still commits, but a later submit takes over the call, so the
	// old stream can no longer move the state machine.
	generation int
	call       int
}

// NewManager restores the session snapshot from the store and returns a
// manager ready to accept submissions.
func NewManager(ctx context.Context, st store.Store, backend llm.Generator, logger *zap.Logger, cfg Config) (*Manager, error) {
	snap, err := st.Load(ctx, cfg.SessionKey)
	if err != nil {
		return nil, err
	}

	var encoder *tiktoken.Tiktoken
	if cfg.MaxMessageTokens > 0 {
		encoder, err = tiktoken.GetEncoding(encodingName)
		if err != nil {
			// Fall back to a rune-count limit rather than refusing to start.
			logger.Warn("token encoding unavailable, message limit falls back to rune count", zap.Error(err))
			encoder = nil
		}
	}

	return &Manager{
		store:        st,
		backend:      backend,
		classifier:   scope.NewClassifier(cfg.CapabilityFirstOnly),
		logger:       logger,
		systemPrompt: llm.SystemPrompt(),
		sessionKey:   cfg.SessionKey,
		maxTokens:    cfg.MaxMessageTokens,
		encoder:      encoder,
		now:          time.Now,
		history:      snap.Messages,
		durations:    snap.Durations,
		status:       models.StatusIdle,
	}, nil
}

// Submit runs one user message through the pipeline. Canned verdicts are
// answered synchronously; in-scope messages start a backend stream and
// return immediately.
func (m *Manager) Submit(ctx context.Context, rawText string) error {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	if m.overLength(trimmed) {
		return ErrMessageTooLong
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == models.StatusSubmitted || m.status == models.StatusStreaming {
		return ErrBusy
	}

	firstUserMessage := true
	for _, msg := range m.history {
		if msg.Role == models.RoleUser {
			firstUserMessage = false
			break
		}
	}

	userMsg := models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   trimmed,
		CreatedAt: m.now(),
	}
	m.history = append(m.history, userMsg)
	m.persistLocked(ctx)

	verdict := m.classifier.Classify(trimmed, scope.Context{FirstUserMessage: firstUserMessage})
	m.logger.Info("message classified",
		zap.String("verdict", verdict.String()),
		zap.Bool("first_user_message", firstUserMessage))

	if canned, ok := responses.For(verdict); ok {
		m.history = append(m.history, models.Message{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Content:   canned,
			CreatedAt: m.now(),
		})
		m.status = models.StatusIdle
		m.persistLocked(ctx)
		return nil
	}

	m.status = models.StatusSubmitted
	m.call++

	// The stream must outlive the submitting request, so it gets its own
	// context; Stop and Clear cancel it.
	streamCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	historyCopy := make([]models.Message, len(m.history))
	copy(historyCopy, m.history)

	go m.generate(streamCtx, m.generation, m.call, historyCopy, m.now())

	return nil
}

// generate runs the backend call for one in-scope message and commits the
// outcome. It is the only method that runs off the caller's goroutine.
func (m *Manager) generate(ctx context.Context, gen, call int, history []models.Message, start time.Time) {
	reply, err := m.backend.Generate(ctx, m.systemPrompt, history, func(string) {
		m.mu.Lock()
		if m.call == call && m.status == models.StatusSubmitted {
			m.status = models.StatusStreaming
		}
		m.mu.Unlock()
	})

	elapsed := m.now().Sub(start).Milliseconds()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen {
		// The session was cleared while this reply was in flight.
		return
	}

	// Only the current call owns the state machine. A stopped call that was
	// superseded by a new submit still commits its partial content below,
	// but must leave status and cancel to the new stream.
	current := m.call == call
	if current {
		m.cancel = nil
	}

	cancelled := errors.Is(err, context.Canceled)
	if err != nil && !cancelled {
		if !current {
			return
		}
		m.status = models.StatusError
		m.logger.Error("backend generation failed", zap.Error(err), zap.Int64("elapsed_ms", elapsed))
		m.persistLocked(context.Background())
		return
	}

	if reply == "" && !current {
		return
	}

	// On stop, whatever was streamed stays committed.
	if reply != "" {
		assistantMsg := models.Message{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Content:   reply,
			CreatedAt: m.now(),
		}
		m.history = append(m.history, assistantMsg)
		m.durations[assistantMsg.ID] = elapsed
	}
	if current {
		m.status = models.StatusIdle
	}
	m.logger.Info("backend generation finished",
		zap.Int64("elapsed_ms", elapsed),
		zap.Bool("cancelled", cancelled))
	m.persistLocked(context.Background())
}

// Stop cancels the in-flight backend call. Partial output is committed by
// the stream goroutine; Stop does not wait for it.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != models.StatusSubmitted && m.status != models.StatusStreaming {
		return ErrNotGenerating
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.status = models.StatusIdle
	return nil
}

// Clear empties the session. History and durations go together, and any
// in-flight reply is cancelled and discarded.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.generation++
	m.history = []models.Message{}
	m.durations = map[string]int64{}
	m.status = models.StatusIdle
	m.persistLocked(ctx)
	return nil
}

// State returns copies of the session data for the presentation layer.
func (m *Manager) State() ([]models.Message, models.RequestStatus, map[string]int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]models.Message, len(m.history))
	copy(history, m.history)
	durations := make(map[string]int64, len(m.durations))
	for id, ms := range m.durations {
		durations[id] = ms
	}
	return history, m.status, durations
}

// persistLocked saves the snapshot best-effort. The in-memory session stays
// authoritative when the store is unavailable. Callers must hold mu.
func (m *Manager) persistLocked(ctx context.Context) {
	snap := &models.Snapshot{Messages: m.history, Durations: m.durations}
	if err := m.store.Save(ctx, m.sessionKey, snap); err != nil {
		m.logger.Warn("failed to persist session snapshot", zap.Error(err))
	}
}

func (m *Manager) overLength(text string) bool {
	if m.maxTokens <= 0 {
		return false
	}
	if m.encoder != nil {
		return len(m.encoder.Encode(text, nil, nil)) > m.maxTokens
	}
	return len([]rune(text)) > m.maxTokens*4
}
