package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"codearea/internal/config"
	httpx "codearea/internal/http"
	questionsvc "codearea/internal/services/question"
	"codearea/internal/store/memory"
	"codearea/internal/store/redisstore"

	"github.com/alicebob/miniredis/v2"
)

// TestEndToEndWithRedisSessions wires the router the way cmd/api does,
// with the in-memory store and Redis sessions backed by miniredis.
func TestEndToEndWithRedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	if err := mr.Set("session:s1", `{"id":10,"nickname":"minji","email":"minji@example.com"}`); err != nil {
		t.Fatal(err)
	}

	cfg := config.Cfg{
		App:     config.AppCfg{Env: "test", Port: "0"},
		DB:      config.DBCfg{Driver: config.DriverMemory},
		Redis:   config.RedisCfg{Addr: mr.Addr()},
		Session: config.SessionCfg{CookieName: "SESSION", ViewWindow: time.Hour},
		HTTP:    config.HTTPCfg{AllowedOrigins: []string{"http://localhost:4444"}, MaxPageSize: 20},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config should be valid: %v", err)
	}

	rdb, err := redisstore.Open(context.Background(), cfg.Redis, 0)
	if err != nil {
		t.Fatalf("redis open: %v", err)
	}
	defer rdb.Close()

	repo := memory.NewQuestionRepository()
	srv := httptest.NewServer(httpx.NewRouter(httpx.RouterDependencies{
		Config:          cfg,
		ListingService:  questionsvc.NewListingService(repo, cfg.HTTP.MaxPageSize),
		QuestionService: questionsvc.NewService(repo, redisstore.NewViewTracker(rdb), cfg.Session.ViewWindow),
		Sessions:        redisstore.NewSessionStore(rdb),
	}))
	defer srv.Close()

	call := func(method, path string, body any) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatal(err)
			}
		}
		req, err := http.NewRequest(method, srv.URL+path, &buf)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "SESSION", Value: "s1"})
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	// create three questions
	var ids []int64
	for _, title := range []string{"A", "B", "C"} {
		resp := call(http.MethodPost, "/questions/add", questionsvc.QuestionPayload{Title: title, Content: "body", Tag: "java"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("create %s: status %d", title, resp.StatusCode)
		}
		var created questionsvc.QuestionResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatal(err)
		}
		if created.Nickname != "minji" {
			t.Fatalf("author not taken from session: %+v", created)
		}
		ids = append(ids, created.ID)
	}

	// same viewer twice counts once
	path := "/questions/" + strconv.FormatInt(ids[0], 10)
	call(http.MethodGet, path, nil)
	resp := call(http.MethodGet, path, nil)
	var viewed questionsvc.QuestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&viewed); err != nil {
		t.Fatal(err)
	}
	if viewed.Views != 1 {
		t.Fatalf("expected 1 view, got %d", viewed.Views)
	}

	// filtered listing
	resp = call(http.MethodPost, "/questions?category=tag&search=JAVA", map[string]any{
		"pagination": map[string]any{"currentPage": 0, "pageSize": 2},
		"sort":       map[string]any{"target": "title"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	var page questionsvc.ListingResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if page.Pagination.TotalPages != 2 || len(page.QuestionPreviews) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.QuestionPreviews[0].Title != "C" || page.QuestionPreviews[1].Title != "B" {
		t.Fatalf("unexpected order: %+v", page.QuestionPreviews)
	}
}
