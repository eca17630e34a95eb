package pipeline

import (
	"context"

	"github.com/quietstack/cadschedule/pkg/artifactstore"
	"github.com/quietstack/cadschedule/pkg/clean"
	"github.com/quietstack/cadschedule/pkg/critical"
	"github.com/quietstack/cadschedule/pkg/duration"
	"github.com/quietstack/cadschedule/pkg/rules"
	"github.com/quietstack/cadschedule/pkg/sequence"
)

// RunClean coerces body into a Payload, runs the Clean stage, and
// persists both the coerced input and the cleaned output artifacts
// (plus dependency_rules.json, when supplied), all under one locked
// transaction. See spec.md §4.1.
func RunClean(ctx context.Context, store *artifactstore.Store, body any) (CleanResult, error) {
	payload, err := clean.CoercePayload(body)
	if err != nil {
		return CleanResult{}, err
	}

	var result CleanResult
	err = store.WithLock(ctx, func() error {
		ts := artifactstore.Timestamp()

		inputLatest, inputArchive, err := store.WriteArtifact("clean_input", payload.Records, ts)
		if err != nil {
			return err
		}

		cleaned := clean.Clean(payload.Records)

		files := artifactstore.Files{InputLatest: inputLatest, InputArchive: inputArchive}
		if payload.Dependencies != nil {
			if err := store.WriteDependencyRules(payload.Dependencies); err != nil {
				return err
			}
			files.DependencyRules = store.DependencyRulesPath()
		}

		outputLatest, outputArchive, err := store.WriteArtifact("clean_output", cleaned, ts)
		if err != nil {
			return err
		}
		files.OutputLatest = outputLatest
		files.OutputArchive = outputArchive

		result = CleanResult{Rows: len(cleaned), Result: cleaned, Files: files}
		return nil
	})
	if err != nil {
		return CleanResult{}, err
	}
	return result, nil
}

// RunDuration reads the Clean stage's output, runs the Duration stage,
// and persists the enriched output artifact. See spec.md §4.2.
func RunDuration(ctx context.Context, store *artifactstore.Store) (DurationResult, error) {
	var result DurationResult
	err := store.WithLock(ctx, func() error {
		records, err := store.ReadRecordList("clean_output")
		if err != nil {
			return err
		}

		out, err := duration.ComputeDurations(records)
		if err != nil {
			return err
		}

		outputLatest, outputArchive, err := store.WriteArtifact("duration_output", out, artifactstore.Timestamp())
		if err != nil {
			return err
		}

		result = DurationResult{
			Rows:   len(out),
			Result: out,
			Files:  artifactstore.Files{OutputLatest: outputLatest, OutputArchive: outputArchive},
		}
		return nil
	})
	if err != nil {
		return DurationResult{}, err
	}
	return result, nil
}

// RunSequence reads the Duration stage's output plus any persisted
// dependency rules, runs the Sequence stage, and persists both the
// ordered activity list and the edge list. See spec.md §4.3.
func RunSequence(ctx context.Context, store *artifactstore.Store) (SequenceResult, error) {
	var result SequenceResult
	err := store.WithLock(ctx, func() error {
		records, err := store.ReadRecordList("duration_output")
		if err != nil {
			return err
		}

		var userRules *rules.Rules
		var dependencyRulesPath string
		if raw, ok, err := store.ReadDependencyRules(); err != nil {
			return err
		} else if ok {
			userRules = rules.Parse(raw)
			dependencyRulesPath = store.DependencyRulesPath()
		}

		edges, nodes := sequence.Sequence(records, userRules)

		ts := artifactstore.Timestamp()
		outputLatest, outputArchive, err := store.WriteArtifact("sequence_output", nodes, ts)
		if err != nil {
			return err
		}
		edgesLatest, edgesArchive, err := store.WriteArtifact("sequence_edges", edges, ts)
		if err != nil {
			return err
		}

		result = SequenceResult{
			Edges:  edges,
			Result: nodes,
			Files: artifactstore.Files{
				OutputLatest:    outputLatest,
				OutputArchive:   outputArchive,
				EdgesLatest:     edgesLatest,
				EdgesArchive:    edgesArchive,
				DependencyRules: dependencyRulesPath,
			},
		}
		return nil
	})
	if err != nil {
		return SequenceResult{}, err
	}
	return result, nil
}

// RunCritical reads the Sequence stage's node list, merges in any
// extra activities from the request body, runs the CPM pass, and
// persists the annotated output. Precedence matches the legacy
// service: a missing sequence artifact is reported before the extras
// payload is even validated. See spec.md §4.4.
func RunCritical(ctx context.Context, store *artifactstore.Store, extraBody any) (CriticalResult, error) {
	var result CriticalResult
	err := store.WithLock(ctx, func() error {
		base, err := store.ReadRecordList("sequence_output")
		if err != nil {
			return err
		}

		extra, err := critical.CoerceExtra(extraBody)
		if err != nil {
			return err
		}

		nodes := critical.Critical(base, extra)

		if _, _, err := store.WriteArtifact("critical_output", nodes, artifactstore.Timestamp()); err != nil {
			return err
		}

		result = CriticalResult{Result: nodes}
		return nil
	})
	if err != nil {
		return CriticalResult{}, err
	}
	return result, nil
}
