package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"booklibrary_backend/internals/features/library/books/repository"

	"github.com/bytedance/sonic"
	"github.com/google/renameio/v2"
	"github.com/robfig/cron/v3"
)

const backupTimeout = 30 * time.Second

type BackupConfig struct {
	CronSchedule string
	Dir          string
}

// StartBackupScheduler snapshots the collection into cfg.Dir on every tick.
// The returned cron must be stopped on shutdown.
func StartBackupScheduler(repo repository.Repository, cfg BackupConfig) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		path, n, err := RunBackup(ctx, repo, cfg.Dir, time.Now())
		if err != nil {
			log.Printf("[BACKUP] failed: %v", err)
			return
		}
		log.Printf("[BACKUP] wrote %d record(s) to %s", n, path)
	})
	if err != nil {
		return nil, fmt.Errorf("add backup cron %q: %w", cfg.CronSchedule, err)
	}

	log.Printf("[BACKUP] started schedule=%q dir=%q store=%s", cfg.CronSchedule, cfg.Dir, repo.Name())
	c.Start()
	return c, nil
}

// RunBackup writes books-<UTC timestamp>.json and returns its path and record count.
func RunBackup(ctx context.Context, repo repository.Repository, dir string, now time.Time) (string, int, error) {
	books, err := repo.Load(ctx)
	if err != nil {
		return "", 0, err
	}
	data, err := sonic.ConfigStd.MarshalIndent(books, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "books-"+now.UTC().Format("20060102T150405Z")+".json")
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return "", 0, fmt.Errorf("write %s: %w", path, err)
	}
	return path, len(books), nil
}
