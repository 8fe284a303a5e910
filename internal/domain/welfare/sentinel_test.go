package welfare

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func boolp(b bool) *bool { return &b }

func TestSentinel_RuleOrder(t *testing.T) {
	s := NewSentinel()
	noWindow := func(ctx context.Context) ([]Entry, error) {
		t.Fatalf("window must not be loaded when an earlier rule matches")
		return nil, nil
	}

	// lethargic gana aunque las notas y el checklist también marquen
	v, err := s.Evaluate(context.Background(), Entry{
		Mood:      MoodLethargic,
		Notes:     "she vomited",
		Checklist: Checklist{MorningFeed: boolp(false), EveningFeed: boolp(false)},
	}, noWindow)
	if err != nil || !v.Flagged || v.Rule != "lethargic_mood" {
		t.Fatalf("expected lethargic_mood, got %+v %v", v, err)
	}

	v, _ = s.Evaluate(context.Background(), Entry{Mood: MoodHappy, Notes: "Some BLOOD on the paw"}, noWindow)
	if v.Rule != "health_keyword" {
		t.Fatalf("expected health_keyword, got %+v", v)
	}

	v, _ = s.Evaluate(context.Background(), Entry{
		Mood:      MoodContent,
		Checklist: Checklist{MorningFeed: boolp(false), EveningFeed: boolp(false), Walk: boolp(true), Mood: boolp(true), Bedtime: boolp(true)},
	}, noWindow)
	if !v.Flagged || v.Rule != "missed_meals" || !strings.Contains(v.Reason, "not eaten") {
		t.Fatalf("expected missed_meals, got %+v", v)
	}
}

func TestSentinel_HealthKeywordExcerpt(t *testing.T) {
	notes := strings.Repeat("á", 45) + " vomit and more text after"
	v, _ := NewSentinel().Evaluate(context.Background(), Entry{Notes: notes}, nil)
	if !v.Flagged {
		t.Fatalf("expected flag")
	}
	want := string([]rune(notes)[:50]) + "..."
	if !strings.Contains(v.Reason, want) {
		t.Fatalf("reason %q should quote %q", v.Reason, want)
	}
}

func TestSentinel_PersistentAnxietyNeedsExactlyThree(t *testing.T) {
	s := NewSentinel()
	e := Entry{Mood: MoodAnxious}

	two := func(ctx context.Context) ([]Entry, error) {
		return []Entry{{Mood: MoodAnxious}, {Mood: MoodWithdrawn}}, nil
	}
	if v, _ := s.Evaluate(context.Background(), e, two); v.Flagged {
		t.Fatalf("two anxious entries must not flag")
	}

	three := func(ctx context.Context) ([]Entry, error) {
		return []Entry{{Mood: MoodAnxious}, {Mood: MoodWithdrawn}, {Mood: MoodAnxious}}, nil
	}
	v, _ := s.Evaluate(context.Background(), e, three)
	if !v.Flagged || v.Rule != "persistent_anxiety" {
		t.Fatalf("expected persistent_anxiety, got %+v", v)
	}

	mixed := func(ctx context.Context) ([]Entry, error) {
		return []Entry{{Mood: MoodAnxious}, {Mood: MoodCurious}, {Mood: MoodAnxious}}, nil
	}
	if v, _ := s.Evaluate(context.Background(), e, mixed); v.Flagged {
		t.Fatalf("mixed window must not flag")
	}
}

func TestSentinel_WindowFailureDegrades(t *testing.T) {
	calls := 0
	failing := func(ctx context.Context) ([]Entry, error) {
		calls++
		return nil, errors.New("db down")
	}
	v, err := NewSentinel().Evaluate(context.Background(), Entry{Mood: MoodAnxious}, failing)
	if !errors.Is(err, ErrDegradedSentinel) {
		t.Fatalf("expected ErrDegradedSentinel, got %v", err)
	}
	if v.Flagged || calls != 1 {
		t.Fatalf("expected unflagged verdict after a single load, got %+v calls=%d", v, calls)
	}
}

func TestSentinel_CustomRules(t *testing.T) {
	s := NewSentinel(Rule{
		Name:  "always",
		Match: func(Entry, []Entry) (string, bool) { return "x", true },
	})
	v, _ := s.Evaluate(context.Background(), Entry{}, nil)
	if v.Rule != "always" {
		t.Fatalf("expected custom rule, got %+v", v)
	}
}
