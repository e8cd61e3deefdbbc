package api

import (
	"context"
	"net/url"
)

// Timeframes accepted by the stats endpoint.
const (
	TimeframeAll   = "all"
	TimeframeMonth = "month"
	TimeframeWeek  = "week"
)

// Stats fetches the aggregate dashboard report for a timeframe.
func (c *Client) Stats(ctx context.Context, timeframe string) (*StatsReport, error) {
	params := url.Values{}
	if timeframe != "" {
		params.Set("timeframe", timeframe)
	}
	var report StatsReport
	if err := c.get(ctx, "stats", params, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Streak fetches the detailed streak figures.
func (c *Client) Streak(ctx context.Context) (*StreakInfo, error) {
	var info StreakInfo
	if err := c.get(ctx, "stats/streak", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
