package assessment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/fitassess/internal/advice"
	"example.com/fitassess/internal/catalog"
	"example.com/fitassess/internal/events"
	"example.com/fitassess/internal/profile"
)

type stubAdvisor struct {
	mu      sync.Mutex
	calls   []advice.Request
	release chan struct{}
	err     error
}

func (a *stubAdvisor) Advise(ctx context.Context, req advice.Request) (*advice.Advice, error) {
	a.mu.Lock()
	a.calls = append(a.calls, req)
	a.mu.Unlock()

	if req.Injury == profile.InjuryKnee && a.release != nil {
		<-a.release
	}
	if a.err != nil {
		return nil, a.err
	}
	return &advice.Advice{
		SafetyTip:          "tip for " + req.Injury,
		GearRecommendation: "gear",
		MotivationalQuote:  "quote",
	}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.AssessmentCompleted
}

func (p *recordingPublisher) PublishCompleted(_ context.Context, evt events.AssessmentCompleted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func walk(t *testing.T, svc *Service, subject, id, level, zone, injury, goal string) profile.Signal {
	t.Helper()
	actions := []profile.Action{
		{Type: profile.ActionSetActivityLevel, Value: level},
		{Type: profile.ActionNext},
		{Type: profile.ActionToggleTargetZone, Value: zone},
		{Type: profile.ActionNext},
		{Type: profile.ActionToggleInjury, Value: injury},
		{Type: profile.ActionNext},
		{Type: profile.ActionSetGoal, Value: goal},
		{Type: profile.ActionNext},
	}
	var signal profile.Signal
	for _, a := range actions {
		var err error
		_, signal, err = svc.Apply(context.Background(), subject, id, a)
		require.NoError(t, err, "action %s", a.Type)
	}
	return signal
}

func TestCompletionDeliversAdviceAndEvent(t *testing.T) {
	advisor := &stubAdvisor{}
	pub := &recordingPublisher{}
	svc := NewService(NewMemoryStore(), catalog.Default(), WithAdvisor(advisor), WithPublisher(pub))

	session, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)

	signal := walk(t, svc, "user-1", session.ID, "active", profile.ZoneLegs, profile.InjuryWrist, "strength")
	require.Equal(t, profile.SignalCompleted, signal)
	svc.Wait()

	got, status, err := svc.Advice(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	require.Equal(t, AdviceReady, status)
	require.Equal(t, "tip for wrist", got.SafetyTip)

	require.Len(t, advisor.calls, 1)
	require.Equal(t, advice.Request{Injury: "wrist", ActivityLevel: "active", TargetZones: []string{"legs"}}, advisor.calls[0])

	require.Len(t, pub.events, 1)
	evt := pub.events[0]
	require.Equal(t, session.ID, evt.SessionID)
	require.Equal(t, []string{"wrist"}, evt.Injuries)
	require.NotEmpty(t, evt.EventID)
	require.Positive(t, evt.ExerciseCount)
}

func TestAdviceFailureIsHidden(t *testing.T) {
	advisor := &stubAdvisor{err: errors.New("gateway down")}
	svc := NewService(NewMemoryStore(), catalog.Default(), WithAdvisor(advisor))

	session, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)
	walk(t, svc, "user-1", session.ID, "sedentary", profile.ZoneBack, profile.InjuryNone, "pain-relief")
	svc.Wait()

	got, status, err := svc.Advice(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, AdviceUnavailable, status)

	plan, err := svc.Plan(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Exercises)
}

func TestStaleAdviceIsDiscarded(t *testing.T) {
	advisor := &stubAdvisor{release: make(chan struct{})}
	svc := NewService(NewMemoryStore(), catalog.Default(), WithAdvisor(advisor))
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1")
	require.NoError(t, err)

	walk(t, svc, "user-1", session.ID, "active", profile.ZoneLegs, profile.InjuryKnee, "strength")

	_, _, err = svc.Apply(ctx, "user-1", session.ID, profile.Action{Type: profile.ActionReset})
	require.NoError(t, err)
	walk(t, svc, "user-1", session.ID, "athlete", profile.ZoneCore, profile.InjuryWrist, "prevention")

	require.Eventually(t, func() bool {
		_, status, err := svc.Advice(ctx, "user-1", session.ID)
		return err == nil && status == AdviceReady
	}, 2*time.Second, 10*time.Millisecond)

	close(advisor.release)
	svc.Wait()

	got, status, err := svc.Advice(ctx, "user-1", session.ID)
	require.NoError(t, err)
	require.Equal(t, AdviceReady, status)
	require.Equal(t, "tip for wrist", got.SafetyTip)
}

func TestPlanRequiresCompletion(t *testing.T) {
	svc := NewService(NewMemoryStore(), catalog.Default())
	session, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.Plan(context.Background(), "user-1", session.ID)
	require.ErrorIs(t, err, ErrNotCompleted)
}

func TestSessionsAreScopedToSubject(t *testing.T) {
	svc := NewService(NewMemoryStore(), catalog.Default())
	session, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.GetSession(context.Background(), "user-2", session.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = svc.Apply(context.Background(), "user-2", session.ID, profile.Action{Type: profile.ActionNext})
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = svc.Apply(context.Background(), "user-1", "missing", profile.Action{Type: profile.ActionNext})
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBlockedTransitionLeavesStateUnchanged(t *testing.T) {
	svc := NewService(NewMemoryStore(), catalog.Default())
	session, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)

	updated, signal, err := svc.Apply(context.Background(), "user-1", session.ID, profile.Action{Type: profile.ActionNext})
	require.NoError(t, err)
	require.Equal(t, profile.SignalBlocked, signal)
	require.Equal(t, profile.StepActivity, updated.State.Step)
}

func TestInvalidActionDoesNotMutate(t *testing.T) {
	svc := NewService(NewMemoryStore(), catalog.Default())
	session, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)

	_, _, err = svc.Apply(context.Background(), "user-1", session.ID, profile.Action{Type: profile.ActionSetActivityLevel, Value: "couch"})
	require.ErrorIs(t, err, profile.ErrInvalidActivityLevel)

	stored, err := svc.GetSession(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	require.Equal(t, profile.LevelUnset, stored.State.Profile.ActivityLevel)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	svc := NewService(NewMemoryStore(), catalog.Default())
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	fresh, err := svc.StartSession(context.Background(), "user-2")
	require.NoError(t, err)

	removed, err := svc.Sweep(context.Background(), time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = svc.GetSession(context.Background(), "user-2", fresh.ID)
	require.NoError(t, err)
}

func TestRecommendStateless(t *testing.T) {
	svc := NewService(NewMemoryStore(), catalog.Default())
	plan := svc.Recommend([]string{profile.ZoneFullBody}, []string{profile.InjuryNone}, profile.LevelSedentary)
	require.Len(t, plan.Exercises, 7)
	require.Len(t, plan.Products, catalog.MaxProducts)
}
