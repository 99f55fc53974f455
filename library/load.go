package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/milk9111/keyframe/anim"
)

// LoadFile parses one track file and registers it under its track name
// (falling back to the file's base name when the track is unnamed).
func (l *Library) LoadFile(path string) (*anim.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("library: load %s: %w", path, err)
	}
	track, err := anim.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("library: parse %s: %w", path, err)
	}
	l.Register(trackKey(path, track), track)
	return track, nil
}

// LoadDir parses every track file in a directory. Files are parsed in
// parallel on a worker pool; workers idle-exit after the load finishes.
// All parse failures are collected and joined rather than aborting the
// load, so one bad file cannot hide the rest of the directory.
func (l *Library) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("library: read dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !isTrackFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil
	}

	pool := worker.NewDynamicWorkerPool(runtime.NumCPU(), 256, 1*time.Second)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for i, path := range paths {
		wg.Add(1)
		p := path // capture for closure
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if _, err := l.LoadFile(p); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

func trackKey(path string, track *anim.Track) string {
	if track.Name != "" {
		return track.Name
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isTrackFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
