package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

var sampleChallenge = map[string]any{
	"id":                7,
	"title":             "List Slicing",
	"question":          "What does nums[1:3] return for nums = [1, 2, 3, 4]?",
	"options":           []string{"[1, 2]", "[2, 3]", "[2, 3, 4]", "[1, 2, 3]"},
	"correct_answer_id": 1,
	"explanation":       "Slicing is half-open: start inclusive, stop exclusive.",
	"difficulty":        "easy",
	"topic":             "Python lists",
	"time_complexity":   "O(k)",
	"space_complexity":  "O(k)",
}

func TestGenerateChallenge(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/challenges/generate-challenge" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sampleChallenge)
	})

	ch, err := c.GenerateChallenge(context.Background(), "Python lists", "easy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["topic"] != "Python lists" || gotBody["difficulty"] != "easy" {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	if ch.ID != 7 || len(ch.Options) != 4 || ch.CorrectAnswerID != 1 {
		t.Fatalf("unexpected challenge: %+v", ch)
	}
}

func TestGenerateChallengeRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(m map[string]any)
	}{
		{"single option", func(m map[string]any) { m["options"] = []string{"only"} }},
		{"five options", func(m map[string]any) { m["options"] = []string{"a", "b", "c", "d", "e"} }},
		{"correct index out of range", func(m map[string]any) { m["correct_answer_id"] = 4 }},
		{"missing question", func(m map[string]any) { delete(m, "question") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := make(map[string]any, len(sampleChallenge))
			for k, v := range sampleChallenge {
				payload[k] = v
			}
			tc.mutate(payload)

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(payload)
			})

			_, err := c.GenerateChallenge(context.Background(), "Python lists", "easy")
			var ip *ErrInvalidPayload
			if !errors.As(err, &ip) {
				t.Fatalf("expected ErrInvalidPayload, got %T (%v)", err, err)
			}
		})
	}
}

func TestValidateAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["challenge_id"] != 7 || body["selected_answer_index"] != 1 {
			t.Errorf("unexpected body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"is_correct":        true,
			"correct_answer_id": 1,
			"explanation":       "Correct! Well done!",
			"feedback":          "Great job!",
		})
	})

	v, err := c.ValidateAnswer(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsCorrect || v.CorrectAnswerID != 1 {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}

func TestHintLevelSent(t *testing.T) {
	var gotLevel int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotLevel = body["hint_level"]
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"hint": "Think about the stop index."})
	})

	hint, err := c.Hint(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLevel != 2 {
		t.Fatalf("expected hint_level 2, got %d", gotLevel)
	}
	if hint == "" {
		t.Fatal("expected hint text")
	}
}

func TestQuotaClamped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"quota_remaining": -2,
			"total_quota":     50,
			"next_reset_date": "2026-08-29T00:00:00Z",
		})
	})

	state, err := c.Quota(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Remaining != 0 {
		t.Fatalf("expected remaining clamped to 0, got %d", state.Remaining)
	}
	if state.NextReset.IsZero() {
		t.Fatal("expected parsed next reset time")
	}
}

func TestQuotaMissingTotal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"quota_remaining": 12,
			"next_reset_date": "2026-08-29T00:00:00Z",
		})
	})

	state, err := c.Quota(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Remaining != 12 || state.Total != 12 {
		t.Fatalf("remaining must survive an omitted total, got %+v", state)
	}
	if state.Exhausted() {
		t.Fatal("a user with quota left must not read as exhausted")
	}
}
