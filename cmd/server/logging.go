package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const logDateLayout = "2006-01-02"

// dailyLog tees the standard logger to stdout and app-YYYY-MM-DD.log, switching
// files when the day changes and keeping at most retentionDays files.
type dailyLog struct {
	dir           string
	retentionDays int

	mu      sync.Mutex
	date    string
	file    *os.File
	stopped chan struct{}
}

func setupLogger(logDir string, retentionDays int) (func(), error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	dl := &dailyLog{dir: logDir, retentionDays: retentionDays, stopped: make(chan struct{})}
	if err := dl.rotate(time.Now()); err != nil {
		return nil, err
	}
	go dl.watch()
	return dl.close, nil
}

func (dl *dailyLog) watch() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			if err := dl.rotate(now); err != nil {
				log.Printf("log rotation: %v", err)
			}
		case <-dl.stopped:
			return
		}
	}
}

// rotate opens the file for now's date if it is not the current one.
func (dl *dailyLog) rotate(now time.Time) error {
	date := now.Format(logDateLayout)
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if date == dl.date {
		return nil
	}
	name := filepath.Join(dl.dir, fmt.Sprintf("app-%s.log", date))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	if dl.file != nil {
		_ = dl.file.Close()
	}
	dl.file = file
	dl.date = date
	dl.prune(now)
	return nil
}

func (dl *dailyLog) prune(now time.Time) {
	entries, err := os.ReadDir(dl.dir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -(dl.retentionDays - 1))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		logDate, err := time.Parse(logDateLayout, strings.TrimSuffix(strings.TrimPrefix(name, "app-"), ".log"))
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(dl.dir, name))
		}
	}
}

func (dl *dailyLog) close() {
	close(dl.stopped)
	dl.mu.Lock()
	defer dl.mu.Unlock()
	log.SetOutput(os.Stdout)
	if dl.file != nil {
		_ = dl.file.Close()
	}
}
