package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/codecade/internal/quota"
)

// GenerateChallenge requests a fresh challenge for the topic and difficulty.
// The payload is schema-validated before it is returned.
func (c *Client) GenerateChallenge(ctx context.Context, topic, difficulty string) (*Challenge, error) {
	body := map[string]string{
		"topic":      topic,
		"difficulty": difficulty,
	}
	raw, err := c.do(ctx, "POST", "challenges/generate-challenge", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeChallenge(raw)
}

// ChallengeByID fetches a single past challenge.
func (c *Client) ChallengeByID(ctx context.Context, id int) (*Challenge, error) {
	raw, err := c.do(ctx, "GET", "challenges/challenge/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeChallenge(raw)
}

func decodeChallenge(raw json.RawMessage) (*Challenge, error) {
	if err := validateChallenge(raw); err != nil {
		return nil, err
	}
	var ch Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return &ch, nil
}

// ValidateAnswer submits a selected option index for server-side validation.
func (c *Client) ValidateAnswer(ctx context.Context, challengeID, selectedIndex int) (*Verdict, error) {
	body := map[string]int{
		"challenge_id":          challengeID,
		"selected_answer_index": selectedIndex,
	}
	var v Verdict
	if err := c.post(ctx, "challenges/validate-answer", body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Hint fetches the graduated hint for the given level (1-3). Level bounds are
// enforced by the caller's hint ladder; the client only refuses nonsense.
func (c *Client) Hint(ctx context.Context, challengeID, level int) (string, error) {
	if level < 1 {
		return "", fmt.Errorf("hint level must be positive, got %d", level)
	}
	body := map[string]int{
		"challenge_id": challengeID,
		"hint_level":   level,
	}
	var payload struct {
		Hint string `json:"hint"`
	}
	if err := c.post(ctx, "challenges/get-hint", body, &payload); err != nil {
		return "", err
	}
	return payload.Hint, nil
}

// Quota fetches the current generation quota, clamped to its invariants.
func (c *Client) Quota(ctx context.Context) (quota.State, error) {
	var payload quotaPayload
	if err := c.get(ctx, "challenges/quota", nil, &payload); err != nil {
		return quota.State{}, err
	}
	state := quota.State{
		Remaining: payload.QuotaRemaining,
		Total:     payload.TotalQuota,
	}
	if payload.NextResetDate != "" {
		if t, err := time.Parse(time.RFC3339, payload.NextResetDate); err == nil {
			state.NextReset = t
		}
	}
	return state.Clamp(), nil
}
