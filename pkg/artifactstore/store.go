package artifactstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/quietstack/cadschedule/pkg/record"
	"github.com/quietstack/cadschedule/pkg/schederr"
)

// Store is the shared working-directory collaborator: one per
// directory, guarding every read/write with a single flock so two
// concurrent requests never interleave writes to the same
// `*_latest.json`/`archive/*` files. See spec.md §5.
type Store struct {
	dir string
	fl  *flock.Flock
}

// New returns a Store rooted at dir. The directory and its archive/
// subdirectory are created lazily on first write.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		fl:  flock.New(filepath.Join(dir, ".cadschedule.lock")),
	}
}

// Dir returns the working directory this Store is rooted at.
func (s *Store) Dir() string { return s.dir }

// Timestamp formats the current time the way archive filenames require:
// YYYYMMDD_HHMMSS, UTC. Timestamps are the only source of nondeterminism
// in the pipeline and never enter computed outputs (spec.md §5).
func Timestamp() string {
	return time.Now().UTC().Format("20060102_150405")
}

// WithLock acquires the working directory's file lock, creating the
// directory tree if needed, runs fn, and releases the lock on every
// return path, including a panic unwinding through fn.
func (s *Store) WithLock(ctx context.Context, fn func() error) error {
	if err := os.MkdirAll(filepath.Join(s.dir, "archive"), 0o755); err != nil {
		return fmt.Errorf("creating working directory: %w", err)
	}
	locked, err := s.fl.TryLockContext(ctx, 25*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquiring working directory lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire working directory lock for %s", s.dir)
	}
	defer s.fl.Unlock()
	return fn()
}

func (s *Store) latestPath(name string) string {
	return filepath.Join(s.dir, name+"_latest.json")
}

func (s *Store) archivePath(name, timestamp string) string {
	return filepath.Join(s.dir, "archive", fmt.Sprintf("%s_%s.json", name, timestamp))
}

// WriteArtifact serializes data as indented UTF-8 JSON to
// `<name>_latest.json` (via a temp-file-then-rename so readers never
// observe a partially written file) and appends a timestamped copy
// under archive/. Returns the two paths written.
func (s *Store) WriteArtifact(name string, data any, timestamp string) (latestPath, archivePath string, err error) {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encoding artifact %s: %w", name, err)
	}

	latest := s.latestPath(name)
	if err := writeFileAtomic(latest, buf); err != nil {
		return "", "", fmt.Errorf("writing artifact %s: %w", latest, err)
	}

	arch := s.archivePath(name, timestamp)
	if err := os.WriteFile(arch, buf, 0o644); err != nil {
		return "", "", fmt.Errorf("archiving artifact %s: %w", arch, err)
	}

	return latest, arch, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadArtifactJSON reads and JSON-decodes `<name>_latest.json`. A
// missing file is a schederr KindMissingArtifact error (HTTP 404).
func (s *Store) ReadArtifactJSON(name string) (any, error) {
	path := s.latestPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, schederr.New(schederr.KindMissingArtifact, "artifact not found: %s", path)
		}
		return nil, fmt.Errorf("reading artifact %s: %w", path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing artifact %s: %w", path, err)
	}
	return v, nil
}

// ReadRecordList reads `<name>_latest.json` and coerces it to a Record
// slice, surfacing a KindInputShape error (422) if the artifact is not
// a JSON array of objects.
func (s *Store) ReadRecordList(name string) ([]record.Record, error) {
	v, err := s.ReadArtifactJSON(name)
	if err != nil {
		return nil, err
	}
	return record.CoerceList(v)
}
