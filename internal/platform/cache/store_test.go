package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreGetOrLoadCachesValue(t *testing.T) {
	store := NewStore(time.Minute)

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrLoad(t.Context(), "key", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if v != "value" {
			t.Fatalf("expected cached value, got %v", v)
		}
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected a single load, got %d", got)
	}
}

func TestStoreGetOrLoadDoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)

	sentinel := errors.New("backing store down")
	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		if loads.Add(1) == 1 {
			return nil, sentinel
		}
		return 42, nil
	}

	if _, err := store.GetOrLoad(t.Context(), "key", loader); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	v, err := store.GetOrLoad(t.Context(), "key", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42 after retry, got %v", v)
	}
}

func TestStoreGetOrLoadCollapsesConcurrentLoads(t *testing.T) {
	store := NewStore(time.Minute)

	var loads atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(context.Background(), "key", loader)
			if err != nil || v != "shared" {
				t.Errorf("unexpected result v=%v err=%v", v, err)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected one collapsed load, got %d", got)
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	store.Set(ctx, "player:list:all", 1)
	store.Set(ctx, "player:list:tank", 2)
	store.Set(ctx, "week:list", 3)

	store.DeletePrefix(ctx, "player:")

	if _, ok := store.Get(ctx, "player:list:all"); ok {
		t.Fatal("expected player keys to be evicted")
	}
	if _, ok := store.Get(ctx, "week:list"); !ok {
		t.Fatal("expected unrelated key to survive")
	}
}
