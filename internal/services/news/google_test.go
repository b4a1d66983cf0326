package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func rssBody(titles ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>feed</title>`)
	for i, t := range titles {
		fmt.Fprintf(&b, `<item><title>%s</title><link>http://news.example/%d</link></item>`, t, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestFetchParsesFeed(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssBody("AAPL rallies on earnings", "Analysts see AAPL selloff"))
	}))
	defer srv.Close()

	g := NewGoogleNews(srv.URL, 20, 5*time.Second, nil)
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	headlines, err := g.Fetch(context.Background(), "AAPL", since)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(headlines) != 2 {
		t.Fatalf("got %d headlines, want 2", len(headlines))
	}
	if headlines[0].Title != "AAPL rallies on earnings" || headlines[0].Link != "http://news.example/0" {
		t.Fatalf("unexpected headline: %+v", headlines[0])
	}
	if !strings.Contains(gotPath, "/rss/search") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if !strings.Contains(gotPath, "after%3A2024-01-01") {
		t.Fatalf("since date not in query: %q", gotPath)
	}
}

func TestFetchTruncatesToMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssBody("one", "two", "three", "four"))
	}))
	defer srv.Close()

	g := NewGoogleNews(srv.URL, 2, 5*time.Second, nil)
	headlines, err := g.Fetch(context.Background(), "AAPL", time.Now())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(headlines) != 2 {
		t.Fatalf("got %d headlines, want 2", len(headlines))
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGoogleNews(srv.URL, 20, 5*time.Second, nil)
	if _, err := g.Fetch(context.Background(), "AAPL", time.Now()); err == nil {
		t.Fatal("expected error for failing feed")
	}
}
