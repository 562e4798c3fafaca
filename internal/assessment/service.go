package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/fitassess/internal/advice"
	"example.com/fitassess/internal/catalog"
	"example.com/fitassess/internal/events"
	"example.com/fitassess/internal/observability"
	"example.com/fitassess/internal/profile"
)

const defaultAdviceTimeout = 15 * time.Second

// Option configures the service.
type Option func(*Service)

// WithAdvisor sets the safety brief collaborator.
func WithAdvisor(a advice.Advisor) Option {
	return func(s *Service) { s.advisor = a }
}

// WithPublisher sets the event publisher.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithAdviceTimeout bounds each advice request.
func WithAdviceTimeout(d time.Duration) Option {
	return func(s *Service) { s.adviceTimeout = d }
}

// Service contains the wizard workflow.
type Service struct {
	store         Store
	catalog       *catalog.Catalog
	advisor       advice.Advisor
	publisher     events.Publisher
	logger        *slog.Logger
	adviceTimeout time.Duration
	now           func() time.Time
	inflight      sync.WaitGroup
}

// NewService constructs a Service.
func NewService(store Store, cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		store:         store,
		catalog:       cat,
		advisor:       advice.NoopAdvisor{},
		publisher:     events.NoopPublisher{},
		logger:        slog.Default(),
		adviceTimeout: defaultAdviceTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog exposes the read-only catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Recommend runs the filters without a session.
func (s *Service) Recommend(targetZones, injuries []string, level profile.ActivityLevel) catalog.Plan {
	p := profile.Profile{ActivityLevel: level, TargetZones: targetZones, Injuries: injuries}
	plan := s.catalog.BuildPlan(p)
	observability.RecordPlan(len(plan.Exercises))
	return plan
}

// StartSession creates a fresh wizard owned by subject.
func (s *Service) StartSession(ctx context.Context, subject string) (*Session, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, errors.New("subject is required")
	}
	now := s.now()
	session := Session{
		ID:           uuid.NewString(),
		Subject:      subject,
		State:        profile.NewState(),
		AdviceStatus: AdviceNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}
	observability.SetActiveSessions(s.store.Len())
	return &session, nil
}

// GetSession returns the subject's session.
func (s *Service) GetSession(ctx context.Context, subject, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Subject != subject {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Apply runs one wizard action. A completing transition bumps the session
// generation and starts the advice request; reset bumps it too so any
// in-flight reply for the old profile is dropped.
func (s *Service) Apply(ctx context.Context, subject, id string, action profile.Action) (*Session, profile.Signal, error) {
	signal := profile.SignalNone
	updated, err := s.store.Update(ctx, id, func(session *Session) error {
		if session.Subject != subject {
			return ErrSessionNotFound
		}
		next, sig, err := profile.Apply(session.State, action)
		if err != nil {
			return err
		}
		signal = sig
		session.State = next
		session.UpdatedAt = s.now()
		switch {
		case sig == profile.SignalCompleted:
			session.Generation++
			session.AdviceStatus = AdvicePending
			session.Advice = nil
		case action.Type == profile.ActionReset:
			session.Generation++
			session.AdviceStatus = AdviceNone
			session.Advice = nil
		}
		return nil
	})
	if err != nil {
		return nil, profile.SignalNone, err
	}
	if updated == nil {
		return nil, profile.SignalNone, ErrSessionNotFound
	}
	observability.RecordTransition(string(action.Type), string(signal))

	if signal == profile.SignalCompleted {
		observability.RecordCompletion()
		s.onCompleted(*updated)
	}
	return updated, signal, nil
}

// Plan rebuilds the plan for a completed session.
func (s *Service) Plan(ctx context.Context, subject, id string) (catalog.Plan, error) {
	session, err := s.GetSession(ctx, subject, id)
	if err != nil {
		return catalog.Plan{}, err
	}
	if !session.State.Profile.Completed {
		return catalog.Plan{}, ErrNotCompleted
	}
	plan := s.catalog.BuildPlan(session.State.Profile)
	observability.RecordPlan(len(plan.Exercises))
	return plan, nil
}

// Advice returns the safety brief when one is ready.
func (s *Service) Advice(ctx context.Context, subject, id string) (*advice.Advice, AdviceStatus, error) {
	session, err := s.GetSession(ctx, subject, id)
	if err != nil {
		return nil, AdviceNone, err
	}
	return session.Advice, session.AdviceStatus, nil
}

// Sweep drops sessions idle for longer than ttl.
func (s *Service) Sweep(ctx context.Context, ttl time.Duration) (int, error) {
	removed, err := s.store.Sweep(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	observability.SetActiveSessions(s.store.Len())
	return removed, nil
}

// Wait blocks until background advice and publish calls return.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) onCompleted(session Session) {
	p := session.State.Profile
	plan := s.catalog.BuildPlan(p)

	productIDs := make([]string, 0, len(plan.Products))
	for _, product := range plan.Products {
		productIDs = append(productIDs, product.ID)
	}
	evt := events.AssessmentCompleted{
		EventID:       uuid.NewString(),
		SessionID:     session.ID,
		Subject:       session.Subject,
		ActivityLevel: string(p.ActivityLevel),
		TargetZones:   p.TargetZones,
		Injuries:      p.ActiveInjuries(),
		Goal:          p.Goal,
		ExerciseCount: len(plan.Exercises),
		ProductIDs:    productIDs,
		CompletedAt:   session.UpdatedAt,
	}

	s.inflight.Add(2)
	go s.publish(evt)
	go s.fetchAdvice(session.ID, session.Generation, advice.Request{
		Injury:        p.PrimaryInjury(),
		ActivityLevel: string(p.ActivityLevel),
		TargetZones:   p.TargetZones,
	})
}

func (s *Service) publish(evt events.AssessmentCompleted) {
	defer s.inflight.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.adviceTimeout)
	defer cancel()
	if err := s.publisher.PublishCompleted(ctx, evt); err != nil {
		s.logger.Warn("publish assessment event failed", "session_id", evt.SessionID, "error", err)
	}
}

func (s *Service) fetchAdvice(sessionID string, generation int, req advice.Request) {
	defer s.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.adviceTimeout)
	defer cancel()

	started := time.Now()
	result, err := s.advisor.Advise(ctx, req)
	outcome := observability.AdviceDelivered
	switch {
	case errors.Is(err, advice.ErrUnavailable):
		outcome = observability.AdviceDisabled
		started = time.Time{}
	case err != nil:
		outcome = observability.AdviceFailed
		s.logger.Warn("safety brief unavailable", "session_id", sessionID, "error", err)
	}

	_, updErr := s.store.Update(context.Background(), sessionID, func(session *Session) error {
		if session.Generation != generation {
			outcome = observability.AdviceSuperseded
			return errSuperseded
		}
		if err != nil {
			session.AdviceStatus = AdviceUnavailable
			session.Advice = nil
			return nil
		}
		session.AdviceStatus = AdviceReady
		session.Advice = result
		return nil
	})
	if updErr != nil && !errors.Is(updErr, errSuperseded) {
		s.logger.Warn("store safety brief failed", "session_id", sessionID, "error", fmt.Errorf("update session: %w", updErr))
	}
	observability.RecordAdvice(outcome, started)
}

var errSuperseded = errors.New("advice superseded")
