package notification

import (
	"context"
	"testing"
)

func TestFeedKeepsNewestFirst(t *testing.T) {
	f := NewFeed(2)
	ctx := context.Background()

	f.Success(ctx, "one")
	f.Error(ctx, "two")
	f.Success(ctx, "three")

	got := f.Recent()
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Message != "three" || got[1].Message != "two" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Level != LevelError || got[0].ID == "" {
		t.Fatalf("unexpected notification: %+v", got[1])
	}
}
