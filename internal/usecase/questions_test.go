package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"leetbot/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeProvider struct {
	dailySlug  string
	dailyErr   error
	randomSlug string
	randomErr  error
	searchSlug string
	searchErr  error
	info       *model.QuestionInfo
	infoErr    error
}

func (f *fakeProvider) Daily(context.Context) (string, error) {
	return f.dailySlug, f.dailyErr
}

func (f *fakeProvider) Random(context.Context, model.Difficulty) (string, error) {
	return f.randomSlug, f.randomErr
}

func (f *fakeProvider) Search(context.Context, string) (string, error) {
	return f.searchSlug, f.searchErr
}

func (f *fakeProvider) Info(context.Context, string) (*model.QuestionInfo, error) {
	return f.info, f.infoErr
}

func sampleInfo() *model.QuestionInfo {
	return &model.QuestionInfo{
		QuestionID:      1,
		Difficulty:      "Easy",
		Title:           "Two Sum",
		Link:            "https://leetcode.com/problems/two-sum",
		TotalAccepted:   1200,
		TotalSubmission: 2400,
		AcRate:          50.0,
		QuestionRating:  1352,
		Description:     "Given nums, return indices.",
		ExampleOne:      "Input: nums = [2,7]",
		FollowUp:        "Less than O(n^2)?",
	}
}

func fieldNames(n model.Notification) []string {
	names := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestDailyRendersQuestion(t *testing.T) {
	provider := &fakeProvider{dailySlug: "two-sum", info: sampleInfo()}
	q := NewQuestions(provider, nopLogger{})

	n := q.Daily(context.Background())

	if n.Title != "1. Two Sum" {
		t.Errorf("unexpected title %q", n.Title)
	}
	if n.URL != "https://leetcode.com/problems/two-sum" {
		t.Errorf("unexpected url %q", n.URL)
	}
	if n.Color != colorEasy {
		t.Errorf("unexpected color %#x", n.Color)
	}
	want := []string{"Example 1:", "Follow up:", "Difficulty:", "Zerotrac Rating:"}
	if got := fieldNames(n); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected fields %v", got)
	}
	rating := n.Fields[len(n.Fields)-1].Value
	if rating != "||1352||" {
		t.Errorf("rating should be spoiler-tagged, got %q", rating)
	}
	if !strings.Contains(n.Footer, "Accepted: 1200") || !strings.Contains(n.Footer, "50.0%") {
		t.Errorf("unexpected footer %q", n.Footer)
	}
}

func TestPremiumQuestionHasNoBodyFields(t *testing.T) {
	info := sampleInfo()
	info.Premium = true
	info.Description = ""
	info.ExampleOne = ""
	info.FollowUp = ""
	provider := &fakeProvider{dailySlug: "two-sum", info: info}

	n := NewQuestions(provider, nopLogger{}).Daily(context.Background())

	if n.Description != "Premium Question" {
		t.Errorf("unexpected description %q", n.Description)
	}
	if len(n.Fields) != 0 {
		t.Errorf("premium variant must not carry body fields, got %v", fieldNames(n))
	}
	if n.URL == "" || n.Title == "" {
		t.Errorf("premium variant keeps title and link: %+v", n)
	}
}

func TestUpstreamFailuresAreUniform(t *testing.T) {
	boom := errors.New("boom")
	q := NewQuestions(&fakeProvider{dailyErr: boom, randomErr: boom, searchErr: boom}, nopLogger{})
	ctx := context.Background()

	want := FailureNotification()
	for name, got := range map[string]model.Notification{
		"daily":  q.Daily(ctx),
		"random": q.Random(ctx, model.DifficultyHard),
		"search": q.Search(ctx, "dp"),
	} {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: expected uniform failure unit, got %+v", name, got)
		}
	}
}

func TestSearchMissLooksLikeFailure(t *testing.T) {
	q := NewQuestions(&fakeProvider{searchSlug: ""}, nopLogger{})
	got := q.Search(context.Background(), "no such thing")
	if !reflect.DeepEqual(got, FailureNotification()) {
		t.Errorf("expected uniform failure unit, got %+v", got)
	}
}

func TestDifficultyColorFallback(t *testing.T) {
	if difficultyColor("Unknown") != colorDefault {
		t.Error("unknown difficulty should map to the default color")
	}
	if difficultyColor("Medium") != colorMedium {
		t.Error("medium should map to the medium color")
	}
}
