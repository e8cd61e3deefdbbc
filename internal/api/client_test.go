package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, StaticToken("test-token"))
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"quota_remaining": 10, "total_quota": 50})
	})

	if _, err := c.Quota(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "429 maps to quota exceeded with detail",
			status: http.StatusTooManyRequests,
			body:   `{"detail":"Daily challenge quota exhausted. Please try again tomorrow."}`,
			check: func(t *testing.T, err error) {
				var qe *ErrQuotaExceeded
				if !errors.As(err, &qe) {
					t.Fatalf("expected ErrQuotaExceeded, got %T (%v)", err, err)
				}
				if qe.Detail != "Daily challenge quota exhausted. Please try again tomorrow." {
					t.Fatalf("unexpected detail: %q", qe.Detail)
				}
			},
		},
		{
			name:   "401 maps to auth required",
			status: http.StatusUnauthorized,
			body:   `{}`,
			check: func(t *testing.T, err error) {
				var ae *ErrAuthRequired
				if !errors.As(err, &ae) {
					t.Fatalf("expected ErrAuthRequired, got %T (%v)", err, err)
				}
			},
		},
		{
			name:   "503 maps to unavailable",
			status: http.StatusServiceUnavailable,
			body:   ``,
			check: func(t *testing.T, err error) {
				var ue *ErrUnavailable
				if !errors.As(err, &ue) {
					t.Fatalf("expected ErrUnavailable, got %T (%v)", err, err)
				}
			},
		},
		{
			name:   "500 maps to generic api error with server detail",
			status: http.StatusInternalServerError,
			body:   `{"detail":"boom"}`,
			check: func(t *testing.T, err error) {
				var ge *APIError
				if !errors.As(err, &ge) {
					t.Fatalf("expected APIError, got %T (%v)", err, err)
				}
				if ge.Status != 500 || ge.Detail != "boom" {
					t.Fatalf("unexpected APIError: %+v", ge)
				}
			},
		},
		{
			name:   "404 without detail falls back to numeric status",
			status: http.StatusNotFound,
			body:   `not json`,
			check: func(t *testing.T, err error) {
				var ge *APIError
				if !errors.As(err, &ge) {
					t.Fatalf("expected APIError, got %T (%v)", err, err)
				}
				if ge.Error() != "api error: HTTP 404" {
					t.Fatalf("unexpected message: %q", ge.Error())
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.Quota(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			tc.check(t, err)
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	c := New(server.URL, StaticToken("tok"))
	_, err := c.Quota(context.Background())
	var ne *ErrNetwork
	if !errors.As(err, &ne) {
		t.Fatalf("expected ErrNetwork, got %T (%v)", err, err)
	}
}

func TestTokenFailurePropagates(t *testing.T) {
	c := New("http://localhost:0", StaticToken(""))
	_, err := c.Quota(context.Background())
	var ae *ErrAuthRequired
	if !errors.As(err, &ae) {
		t.Fatalf("expected ErrAuthRequired, got %T (%v)", err, err)
	}
}

func TestExpiredJWTShortCircuits(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	c.tokens = StaticToken(signed)

	_, err = c.Quota(context.Background())
	var ae *ErrAuthRequired
	if !errors.As(err, &ae) {
		t.Fatalf("expected ErrAuthRequired, got %T (%v)", err, err)
	}
	if requests != 0 {
		t.Fatalf("expired token must not reach the network, saw %d requests", requests)
	}
}

func TestOpaqueTokenPassesThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"quota_remaining": 1, "total_quota": 50})
	})
	c.tokens = StaticToken("not-a-jwt")

	if _, err := c.Quota(context.Background()); err != nil {
		t.Fatalf("opaque tokens should be sent as-is: %v", err)
	}
}

func TestCancelledContextNotReportedAsNetworkFailure(t *testing.T) {
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Quota(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %T (%v)", err, err)
	}
}
