package api

import "context"

// Daily fetches today's challenge and the user's attempt status. Whether an
// attempt is allowed comes from the server, never from client date math.
func (c *Client) Daily(ctx context.Context) (*DailyState, error) {
	var state DailyState
	if err := c.get(ctx, "challenges/daily-challenge", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// CompleteDaily records the daily challenge result and returns the updated
// streak figures.
func (c *Client) CompleteDaily(ctx context.Context, dailyChallengeID int, isCorrect bool) (*DailyResult, error) {
	body := map[string]any{
		"daily_challenge_id": dailyChallengeID,
		"is_correct":         isCorrect,
	}
	var result DailyResult
	if err := c.post(ctx, "challenges/daily-challenge/complete", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
