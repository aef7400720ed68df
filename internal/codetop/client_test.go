package codetop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFetchAllSuccess checks decoding and the request headers.
func TestFetchAllSuccess(t *testing.T) {
	var gotUA, gotAccept, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotReferer = r.Header.Get("Referer")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 2,
			"list": [
				{"time": "2025-07-15T10:00:00Z", "value": 976, "leetcode": {"frontend_question_id": 3, "title": "无重复字符的最长子串", "level": 2, "slug_title": "longest-substring"}},
				{"time": "2025-07-10T10:00:00Z", "value": 790, "leetcode": {"frontend_question_id": 206, "title": "反转链表", "level": 1, "slug_title": "reverse-linked-list"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	payload, err := client.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.List, 2)
	assert.Equal(t, int64(3), payload.List[0].Leetcode.FrontendQuestionID)
	assert.Equal(t, "无重复字符的最长子串", payload.List[0].Leetcode.Title)
	assert.Equal(t, 976, payload.List[0].Value)

	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Equal(t, "https://codetop.cc/home", gotReferer)
}

// TestFetchAllHTTPError checks that non-2xx statuses fail the fetch.
func TestFetchAllHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "not found", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second)
			_, err := client.FetchAll(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "status")
		})
	}
}

// TestFetchAllBadPayload checks that malformed JSON fails the fetch.
func TestFetchAllBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count": 1, "list": [`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

// TestFetchAllContextCancel checks that a canceled context aborts the fetch.
func TestFetchAllContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchAll(ctx)
	require.Error(t, err)
}
