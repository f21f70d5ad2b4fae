package ratings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

const sampleTable = "Rating\tID\tTitle\tTitle ZH\tTitle Slug\tContest Slug\tProblem#\n" +
	"3018.4940165727\t2809\tMaximum Number of Robots Within Budget\t预算内的最多机器人数目\tmaximum-number-of-robots-within-budget\tweekly-contest-307\tQ4\n" +
	"1352.0\t1\tTwo Sum\t两数之和\ttwo-sum\t\t\n" +
	"garbage line without tabs\n"

func TestLoadParsesTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleTable))
	}))
	defer srv.Close()

	table := New(srv.Client(), srv.URL, nopLogger{})
	if err := table.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rating, ok := table.Rating("Two Sum")
	if !ok || rating != 1352 {
		t.Fatalf("expected Two Sum rating 1352, got %d (ok=%v)", rating, ok)
	}
	rating, ok = table.Rating("Maximum Number of Robots Within Budget")
	if !ok || rating != 3018 {
		t.Fatalf("expected rating 3018, got %d (ok=%v)", rating, ok)
	}
	if _, ok := table.Rating("No Such Question"); ok {
		t.Fatal("unknown title should not resolve")
	}
}

func TestLoadKeepsOldTableOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	table := New(srv.Client(), srv.URL, nopLogger{})
	if err := table.Load(context.Background()); err == nil {
		t.Fatal("expected load error on 503")
	}
	if _, ok := table.Rating("Two Sum"); ok {
		t.Fatal("table should stay empty after failed load")
	}
}
