package aiquiz

import (
	"errors"
	"testing"
)

func TestDecodeGenerated(t *testing.T) {
	fenced := "```json\n[{\"question\":\"q\",\"options\":[\"a\",\"b\"],\"answer\":\"a\"}]\n```"
	got, err := decodeGenerated(fenced)
	if err != nil {
		t.Fatalf("decodeGenerated failed: %v", err)
	}
	if len(got) != 1 || got[0].Answer != "a" {
		t.Errorf("unexpected questions: %+v", got)
	}

	if _, err := decodeGenerated("   "); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
	if _, err := decodeGenerated(`{"error":"not educational"}`); err == nil {
		t.Error("expected an error for a non-array response")
	}
}
