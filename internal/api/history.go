package api

import (
	"context"
	"net/url"
	"strconv"
)

// History fetches one page of the user's past challenges with server-side
// filtering and sorting.
func (c *Client) History(ctx context.Context, q HistoryQuery) (*HistoryPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("offset", strconv.Itoa(q.Offset))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var page HistoryPage
	if err := c.get(ctx, "challenges/my-history", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Bookmarks fetches the user's bookmarked challenge ids.
func (c *Client) Bookmarks(ctx context.Context) (map[int]bool, error) {
	var payload struct {
		Bookmarks []struct {
			ID int `json:"id"`
		} `json:"bookmarks"`
	}
	if err := c.get(ctx, "challenges/bookmarks", nil, &payload); err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(payload.Bookmarks))
	for _, b := range payload.Bookmarks {
		set[b.ID] = true
	}
	return set, nil
}

// ToggleBookmark flips the bookmark flag for a challenge and returns the
// server's resulting state. The caller reflects the returned boolean only;
// nothing is predicted ahead of the round trip.
func (c *Client) ToggleBookmark(ctx context.Context, challengeID int) (bool, error) {
	var payload struct {
		Bookmarked bool `json:"bookmarked"`
	}
	path := "challenges/challenge/" + strconv.Itoa(challengeID) + "/bookmark"
	if err := c.post(ctx, path, nil, &payload); err != nil {
		return false, err
	}
	return payload.Bookmarked, nil
}

// ShareLink fetches a shareable URL for a challenge.
func (c *Client) ShareLink(ctx context.Context, challengeID int) (string, error) {
	var payload struct {
		ShareURL string `json:"share_url"`
	}
	path := "challenges/challenge/" + strconv.Itoa(challengeID) + "/share"
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return "", err
	}
	return payload.ShareURL, nil
}
