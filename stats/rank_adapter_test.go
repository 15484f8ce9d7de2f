package stats

import (
	"context"
	"testing"

	"github.com/rushteam/lenskit/core"
	"github.com/rushteam/lenskit/store"
)

func TestGenreRank(t *testing.T) {
	kv := store.NewMemoryStore()
	defer kv.Close()
	rank := NewGenreRank(kv, "")

	ctx := context.Background()
	dist := []core.GenreCount{
		{Name: "Drama", Count: 30},
		{Name: "Comedy", Count: 50},
		{Name: "Horror", Count: 10},
	}
	if err := rank.Publish(ctx, dist); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	top, err := rank.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top error: %v", err)
	}
	want := []string{"Comedy", "Drama"}
	if len(top) != 2 || top[0] != want[0] || top[1] != want[1] {
		t.Errorf("Top = %v, want %v", top, want)
	}

	n, err := rank.Count(ctx, "Horror")
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 10 {
		t.Errorf("Count = %d, want 10", n)
	}

	if _, err := rank.Count(ctx, "Western"); !core.IsStoreNotFound(err) {
		t.Errorf("err = %v, want store NOT_FOUND", err)
	}
}
