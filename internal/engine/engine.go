package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/posturekit/posturekit/internal/detectors"
	"github.com/posturekit/posturekit/internal/ignore"
	"github.com/posturekit/posturekit/internal/types"
)

// DefaultMaxBytes caps how large a file may be before it is skipped.
const DefaultMaxBytes int64 = 1 << 20

// DefaultPerFileTimeout bounds detector time spent on a single file.
const DefaultPerFileTimeout = 5 * time.Second

// Config controls scanning scope, filtering, and performance.
type Config struct {
	Root            string
	Exclude         []string
	MaxBytes        int64
	PerFileTimeout  time.Duration
	Workers         int
	DefaultExcludes bool
	Progress        func()
}

// Warning records a file the scan skipped or abandoned without failing
// the run.
type Warning struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result is the outcome of one scan over a target tree.
type Result struct {
	Matches      []types.Match
	Warnings     []Warning
	FilesScanned int
	Duration     time.Duration
}

// ScanTargetError reports a scan root that cannot be traversed at all.
type ScanTargetError struct {
	Path string
	Err  error
}

func (e *ScanTargetError) Error() string {
	return fmt.Sprintf("scan target %s: %v", e.Path, e.Err)
}

func (e *ScanTargetError) Unwrap() error { return e.Err }

// Scan walks cfg.Root, runs every registered detector over each eligible
// file, and returns the aggregate matches in deterministic order. A file
// that exceeds cfg.PerFileTimeout is abandoned and reported as a warning,
// as are unreadable files and inaccessible entries; only an unusable root
// or cancellation fails the run.
func Scan(ctx context.Context, cfg Config) (Result, error) {
	var result Result

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return result, &ScanTargetError{Path: cfg.Root, Err: err}
	}
	if !info.IsDir() {
		return result, &ScanTargetError{Path: cfg.Root, Err: fmt.Errorf("not a directory")}
	}

	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.PerFileTimeout <= 0 {
		cfg.PerFileTimeout = DefaultPerFileTimeout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".posturekitignore"))

	started := time.Now()
	rels, warns, err := walk(ctx, cfg, ign)
	if err != nil {
		return result, err
	}
	result.Warnings = warns

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range jobs {
				data, err := os.ReadFile(filepath.Join(cfg.Root, filepath.FromSlash(rel)))
				if err != nil {
					mu.Lock()
					result.Warnings = append(result.Warnings, Warning{
						Path:   rel,
						Reason: fmt.Sprintf("unreadable: %v", err),
					})
					mu.Unlock()
					continue
				}
				if looksBinary(data) || looksNonTextMIME(rel, data) {
					continue
				}
				matches, timedOut := scanFile(rel, data, cfg.PerFileTimeout)
				mu.Lock()
				result.FilesScanned++
				if timedOut {
					result.Warnings = append(result.Warnings, Warning{
						Path:   rel,
						Reason: fmt.Sprintf("detectors exceeded %s, file skipped", cfg.PerFileTimeout),
					})
				} else {
					result.Matches = append(result.Matches, matches...)
				}
				mu.Unlock()
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}()
	}

	var ctxErr error
feed:
	for _, rel := range rels {
		select {
		case jobs <- rel:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return result, ctxErr
	}

	sortMatches(result.Matches)
	sortWarnings(result.Warnings)
	result.Duration = time.Since(started)
	return result, nil
}

// scanFile runs all detectors over one file with a hard deadline. On
// timeout the detector goroutine is abandoned; it holds only its own
// copy of state and finishes harmlessly in the background.
func scanFile(rel string, data []byte, timeout time.Duration) ([]types.Match, bool) {
	done := make(chan []types.Match, 1)
	go func() {
		done <- detectors.RunAll(rel, data)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case matches := <-done:
		return matches, false
	case <-timer.C:
		return nil, true
	}
}

func sortMatches(ms []types.Match) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Path != ms[j].Path {
			return ms[i].Path < ms[j].Path
		}
		if ms[i].Line != ms[j].Line {
			return ms[i].Line < ms[j].Line
		}
		return ms[i].Detector < ms[j].Detector
	})
}

func sortWarnings(ws []Warning) {
	sort.Slice(ws, func(i, j int) bool { return ws[i].Path < ws[j].Path })
}
