package artifactstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(dir)
}

func TestWriteArtifactThenReadRecordList(t *testing.T) {
	s := tempStore(t)
	data := []map[string]any{{"Element Name": "A"}, {"Element Name": "B"}}
	latest, archive, err := s.WriteArtifact("clean_output", data, "20260101_000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(latest); err != nil {
		t.Errorf("latest file not written: %v", err)
	}
	if _, err := os.Stat(archive); err != nil {
		t.Errorf("archive file not written: %v", err)
	}

	recs, err := s.ReadRecordList("clean_output")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 || recs[0].GetString("Element Name") != "A" {
		t.Errorf("unexpected records: %+v", recs)
	}
}

func TestReadRecordListMissingArtifact(t *testing.T) {
	s := tempStore(t)
	if _, err := s.ReadRecordList("duration_output"); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestReadRecordListRejectsNonList(t *testing.T) {
	s := tempStore(t)
	if _, _, err := s.WriteArtifact("duration_output", map[string]any{"not": "a list"}, "20260101_000000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.ReadRecordList("duration_output"); err == nil {
		t.Fatalf("expected shape error for non-list artifact")
	}
}

func TestWithLockReleasesOnSuccess(t *testing.T) {
	s := tempStore(t)
	called := false
	if err := s.WithLock(context.Background(), func() error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("fn was not called")
	}

	second := false
	if err := s.WithLock(context.Background(), func() error {
		second = true
		return nil
	}); err != nil {
		t.Fatalf("expected lock to be reacquirable after release: %v", err)
	}
	if !second {
		t.Fatalf("second WithLock call did not run fn")
	}
}

func TestWithLockReleasesOnError(t *testing.T) {
	s := tempStore(t)
	wantErr := os.ErrInvalid
	if err := s.WithLock(context.Background(), func() error {
		return wantErr
	}); err != wantErr {
		t.Fatalf("expected fn's error to propagate, got %v", err)
	}

	if err := s.WithLock(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("lock was not released after an error return: %v", err)
	}
}

func TestDependencyRulesRoundTrip(t *testing.T) {
	s := tempStore(t)
	if _, ok, err := s.ReadDependencyRules(); err != nil || ok {
		t.Fatalf("expected (nil, false, nil) for missing file, got ok=%v err=%v", ok, err)
	}

	raw := map[string]any{"Equipment": []any{"Concrete"}}
	if err := s.WriteDependencyRules(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "dependency_rules.json")); err != nil {
		t.Errorf("dependency_rules.json not written: %v", err)
	}

	got, ok, err := s.ReadDependencyRules()
	if err != nil || !ok {
		t.Fatalf("expected rules to round-trip, ok=%v err=%v", ok, err)
	}
	if _, present := got["Equipment"]; !present {
		t.Errorf("unexpected rules content: %+v", got)
	}
}
