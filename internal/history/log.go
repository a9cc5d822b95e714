// Package history keeps an append-only JSONL log of assessment runs so
// posture can be compared over time. The log lives inside .git when the
// target is a repository, keeping it out of the scanned tree.
package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/posturekit/posturekit/internal/audit"
)

// RunRecord is one logged assessment run. Scores are stored as rendered
// values; a nil OverallScore means the run had insufficient data.
type RunRecord struct {
	Timestamp        time.Time          `json:"timestamp"`
	RunID            string             `json:"run_id"`
	Root             string             `json:"root"`
	Branch           string             `json:"branch,omitempty"`
	Commit           string             `json:"commit,omitempty"`
	OverallScore     *float64           `json:"overall_score"`
	AssessedControls int                `json:"assessed_controls"`
	DomainScores     map[string]float64 `json:"domain_scores,omitempty"`
	FindingCounts    map[string]int     `json:"finding_counts,omitempty"`
	FilesScanned     int                `json:"files_scanned"`
	Duration         string             `json:"duration"`
	Warnings         int                `json:"warnings"`
}

// Log appends run records to a JSONL file under the target root.
type Log struct {
	path string
}

// NewLog places the log inside .git when present, otherwise as a dotfile
// in the root itself.
func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	path := filepath.Join(root, ".posturekit_history.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "posturekit_history.jsonl")
	}
	return &Log{path: path}
}

// Append writes one record. A missing RunID is derived from the root and
// timestamp so re-runs in the same second on the same tree still differ
// by content.
func (l *Log) Append(rec RunRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	if rec.RunID == "" {
		rec.RunID = fmt.Sprintf("run_%016x",
			xxhash.Sum64String(rec.Root+rec.Timestamp.Format(time.RFC3339Nano)))
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("failed to write history record: %w", err)
	}
	return nil
}

// LoadHistory returns all records, newest first. The log is one record
// per line, so corrupt lines are skipped individually rather than
// failing the whole load.
func (l *Log) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec RunRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return records, fmt.Errorf("failed to read history log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewRunRecord summarizes a finished report into a loggable record.
func NewRunRecord(root string, rep audit.Report, filesScanned int, duration time.Duration) RunRecord {
	rec := RunRecord{
		Timestamp:        rep.GeneratedAt,
		Root:             root,
		AssessedControls: rep.Scores.Overall.Assessed,
		FilesScanned:     filesScanned,
		Duration:         duration.String(),
		Warnings:         len(rep.Warnings),
	}
	if !rep.Scores.Overall.Insufficient() {
		v := rep.Scores.Overall.Value()
		rec.OverallScore = &v
	}
	rec.DomainScores = map[string]float64{}
	for d, s := range rep.Scores.ByDomain {
		if !s.Insufficient() {
			rec.DomainScores[d] = s.Value()
		}
	}
	rec.FindingCounts = map[string]int{}
	for _, f := range rep.Findings {
		rec.FindingCounts[f.Priority.String()]++
	}
	rec.Branch, rec.Commit = RepoMetadata(root)
	return rec
}
