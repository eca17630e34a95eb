package pipeline

import (
	"github.com/quietstack/cadschedule/pkg/artifactstore"
	"github.com/quietstack/cadschedule/pkg/critical"
	"github.com/quietstack/cadschedule/pkg/record"
	"github.com/quietstack/cadschedule/pkg/sequence"
)

// CleanResult is the /clean response body, per spec.md §6.
type CleanResult struct {
	Rows   int                    `json:"rows"`
	Result []record.OrderedRecord `json:"result"`
	Files  artifactstore.Files    `json:"files"`
}

// DurationResult is the /duration response body.
type DurationResult struct {
	Rows   int                    `json:"rows"`
	Result []record.OrderedRecord `json:"result"`
	Files  artifactstore.Files    `json:"files"`
}

// SequenceResult is the /sequence response body.
type SequenceResult struct {
	Edges  []sequence.Edge     `json:"edges"`
	Result []sequence.Node     `json:"result"`
	Files  artifactstore.Files `json:"files"`
}

// CriticalResult is the /critical response body.
type CriticalResult struct {
	Result []critical.Node `json:"result"`
}
