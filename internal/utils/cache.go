package utils

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"

	"tripcore.trainlog.org/internal/report"
)

// CachedBundleName returns the file name under which a GTFS bundle of feedID
// is cached, e.g. "feed_sbb_20250807.zip".
func CachedBundleName(feedID, version string) string {
	return fmt.Sprintf("%s%s.zip", bundlePrefix(feedID), version)
}

func bundlePrefix(feedID string) string {
	return fmt.Sprintf("feed_%s_", feedID)
}

// GetLastCachedFile returns the most recently modified bundle of feedID in
// cacheDir.
func GetLastCachedFile(cacheDir, feedID string) (string, error) {
	files, err := os.ReadDir(cacheDir)
	if err != nil {
		return "", err
	}

	var lastModTime time.Time
	var lastModFile string

	prefix := bundlePrefix(feedID)

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), prefix) {
			continue
		}
		fileInfo, err := file.Info()
		if err != nil {
			return "", err
		}
		if fileInfo.ModTime().After(lastModTime) {
			lastModTime = fileInfo.ModTime()
			lastModFile = file.Name()
		}
	}

	if lastModFile == "" {
		return "", fmt.Errorf("no cached bundles found for feed %s in %s", feedID, cacheDir)
	}

	return filepath.Join(cacheDir, lastModFile), nil
}

// CreateCacheDirectory ensures the cache directory exists, creating it if necessary.
func CreateCacheDirectory(cacheDir string, logger *slog.Logger) error {
	stat, err := os.Stat(cacheDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := os.MkdirAll(cacheDir, 0o750); err != nil {
			report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
				Level:        sentry.LevelError,
				ExtraContext: map[string]interface{}{"cache_dir": cacheDir},
			})
			return err
		}
		logger.Info("Created cache directory", "cache_dir", cacheDir)
		return nil
	}

	if !stat.IsDir() {
		err := fmt.Errorf("%s is not a directory", cacheDir)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Level:        sentry.LevelError,
			ExtraContext: map[string]interface{}{"cache_dir": cacheDir},
		})
		return err
	}
	return nil
}
