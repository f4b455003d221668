package aiquiz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
)

type fakeProvider struct {
	out        []aiquiz.Generated
	err        error
	gotSystem  string
	gotUser    string
	callsCount int
}

func (f *fakeProvider) SendPrompt(_ context.Context, system, user string) ([]aiquiz.Generated, error) {
	f.callsCount++
	f.gotSystem = system
	f.gotUser = user
	return f.out, f.err
}

func TestGenerateQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes", func(t *testing.T) {
		p := &fakeProvider{out: []aiquiz.Generated{
			{Question: "Largest planet?", Options: []string{"A) Mars", "B) Jupiter", "C) Venus"}, Answer: "B", Explanation: "By mass."},
			{Question: "H2O is?", Options: []string{"Water", "Salt"}, Answer: "Water"},
			{Question: "Bad answer", Options: []string{"x", "y"}, Answer: "z"},
			{Question: "One option", Options: []string{"x"}, Answer: "x"},
			{Question: "", Options: []string{"x", "y"}, Answer: "x"},
		}}
		resp, err := aiquiz.NewService(p).GenerateQuestions(ctx, aiquiz.QuestionRequest{Topic: " astronomy ", Count: 5})
		if err != nil {
			t.Fatalf("GenerateQuestions failed: %v", err)
		}
		if len(resp.Questions) != 2 || resp.Rejected != 3 {
			t.Fatalf("expected 2 accepted and 3 rejected, got %d / %d", len(resp.Questions), resp.Rejected)
		}
		first := resp.Questions[0]
		if first.Answer != "Jupiter" || first.Options[0] != "Mars" || first.CorrectIndex() != 1 {
			t.Errorf("letter answer not resolved: %+v", first)
		}
		if !strings.Contains(p.gotUser, `"astronomy"`) || !strings.Contains(p.gotUser, "Generate 5 ") {
			t.Errorf("unexpected user prompt: %s", p.gotUser)
		}
		if p.gotSystem == "" {
			t.Error("system prompt not sent")
		}
	})

	t.Run("ClampsCount", func(t *testing.T) {
		many := make([]aiquiz.Generated, 15)
		for i := range many {
			many[i] = aiquiz.Generated{Question: "q", Options: []string{"a", "b"}, Answer: "a"}
		}
		p := &fakeProvider{out: many}
		resp, err := aiquiz.NewService(p).GenerateQuestions(ctx, aiquiz.QuestionRequest{Topic: "t", Count: 50})
		if err != nil {
			t.Fatalf("GenerateQuestions failed: %v", err)
		}
		if len(resp.Questions) != 10 {
			t.Errorf("expected 10 questions, got %d", len(resp.Questions))
		}
		if !strings.Contains(p.gotUser, "Generate 10 ") {
			t.Errorf("count not clamped in prompt: %s", p.gotUser)
		}
	})

	t.Run("MissingTopic", func(t *testing.T) {
		p := &fakeProvider{}
		if _, err := aiquiz.NewService(p).GenerateQuestions(ctx, aiquiz.QuestionRequest{Topic: "  "}); !errors.Is(err, aiquiz.ErrMissingTopic) {
			t.Errorf("expected ErrMissingTopic, got %v", err)
		}
		if p.callsCount != 0 {
			t.Error("provider should not be called without a topic")
		}
	})

	t.Run("NoProvider", func(t *testing.T) {
		if _, err := aiquiz.NewService(nil).GenerateQuestions(ctx, aiquiz.QuestionRequest{Topic: "t"}); !errors.Is(err, aiquiz.ErrProviderUnavailable) {
			t.Errorf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("NothingUsable", func(t *testing.T) {
		p := &fakeProvider{out: []aiquiz.Generated{{Question: "q", Options: []string{"a", "b"}, Answer: "c"}}}
		if _, err := aiquiz.NewService(p).GenerateQuestions(ctx, aiquiz.QuestionRequest{Topic: "t"}); !errors.Is(err, aiquiz.ErrNoValidQuestions) {
			t.Errorf("expected ErrNoValidQuestions, got %v", err)
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		if _, err := aiquiz.NewService(&fakeProvider{err: boom}).GenerateQuestions(ctx, aiquiz.QuestionRequest{Topic: "t"}); !errors.Is(err, boom) {
			t.Errorf("expected provider error, got %v", err)
		}
	})
}

func TestBuildUserPrompt(t *testing.T) {
	got := aiquiz.BuildUserPrompt(aiquiz.QuestionRequest{Topic: "cells", Context: "chapter 2 notes"})
	for _, want := range []string{"Generate 3 ", `"cells"`, `"medium"`, "chapter 2 notes"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt %q missing %q", got, want)
		}
	}
}

func TestGenerateQuestionsHandler(t *testing.T) {
	p := &fakeProvider{out: []aiquiz.Generated{{Question: "q", Options: []string{"a", "b"}, Answer: "b"}}}
	h := aiquiz.NewHandler(aiquiz.NewService(p))

	cases := []struct {
		name string
		body string
		want int
	}{
		{"OK", `{"topic":"biology","count":1}`, http.StatusCreated},
		{"BadJSON", `{`, http.StatusBadRequest},
		{"NoTopic", `{"count":1}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.GenerateQuestions(rec, httptest.NewRequest(http.MethodPost, "/ai-quiz", strings.NewReader(tc.body)))
			if rec.Code != tc.want {
				t.Errorf("got %d, want %d: %s", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}
