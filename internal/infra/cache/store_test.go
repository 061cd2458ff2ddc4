package cache

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestFetchReadThrough(t *testing.T) {
	store := NewStore()
	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Fetch(context.Background(), store, "things", fetch)
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unexpected value %v", got)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single backing fetch, got %d", calls)
	}
}

func TestInvalidateThenRefetch(t *testing.T) {
	store := NewStore()
	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	first, _ := Fetch(context.Background(), store, "counter", fetch)
	store.Invalidate("counter")
	second, _ := Fetch(context.Background(), store, "counter", fetch)

	if first != 1 || second != 2 {
		t.Fatalf("invalidate must force a refetch: first=%d second=%d", first, second)
	}
}

func TestFetchErrorNotCached(t *testing.T) {
	store := NewStore()
	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("backend down")
		}
		return "ok", nil
	}

	if _, err := Fetch(context.Background(), store, "k", fetch); err == nil {
		t.Fatal("expected first fetch to fail")
	}
	got, err := Fetch(context.Background(), store, "k", fetch)
	if err != nil || got != "ok" {
		t.Fatalf("expected recovery on retry, got %q err %v", got, err)
	}
}
