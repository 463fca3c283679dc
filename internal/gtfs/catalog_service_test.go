package gtfs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tripcore.trainlog.org/internal/utils"
)

func newTestService(t *testing.T) *CatalogService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogService(NewCatalogStore(), t.TempDir(), logger)
}

func TestCatalogServiceCatalog(t *testing.T) {
	cs := newTestService(t)

	if _, err := cs.Catalog("sbb"); !errors.Is(err, ErrUnknownFeed) {
		t.Errorf("Expected ErrUnknownFeed, got %v", err)
	}

	cs.Store.Set("sbb", NewCatalog("sbb", testStops()))
	catalog, err := cs.Catalog("sbb")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if catalog.FeedID != "sbb" {
		t.Errorf("Expected sbb catalog, got %s", catalog.FeedID)
	}
}

func TestLoadFeed(t *testing.T) {
	t.Run("No cached bundle", func(t *testing.T) {
		cs := newTestService(t)
		if err := cs.LoadFeed("sbb"); err == nil {
			t.Error("Expected an error without cached bundle")
		}
		if _, ok := cs.Store.Get("sbb"); ok {
			t.Error("Expected nothing stored")
		}
	})

	t.Run("Corrupt bundle", func(t *testing.T) {
		cs := newTestService(t)
		path := filepath.Join(cs.CacheDir, utils.CachedBundleName("sbb", "20250807"))
		if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
			t.Fatalf("Failed to write bundle: %v", err)
		}

		err := cs.LoadFeed("sbb")
		if err == nil || !strings.Contains(err.Error(), "sbb") {
			t.Errorf("Expected parse error mentioning the feed, got %v", err)
		}
	})
}

func TestLoadFeedsJoinsErrors(t *testing.T) {
	var logBuffer bytes.Buffer
	cs := newTestService(t)
	cs.Logger = slog.New(slog.NewTextHandler(&logBuffer, nil))

	err := cs.LoadFeeds([]string{"sbb", "sncf"})
	if err == nil {
		t.Fatal("Expected an error for missing bundles")
	}
	for _, feed := range []string{"sbb", "sncf"} {
		if !strings.Contains(err.Error(), feed) {
			t.Errorf("Expected error to mention %s, got %v", feed, err)
		}
	}
	if !strings.Contains(logBuffer.String(), "No cached GTFS bundle") {
		t.Errorf("Expected failure to be logged, got %q", logBuffer.String())
	}

	if err := cs.LoadFeeds(nil); err != nil {
		t.Errorf("Expected no error for no feeds, got %v", err)
	}
}

func TestRefreshCatalogsStops(t *testing.T) {
	cs := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		cs.RefreshCatalogs(ctx, []string{"sbb"}, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(15 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RefreshCatalogs did not stop after cancel")
	}
}
