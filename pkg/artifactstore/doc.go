// Package artifactstore is the filesystem collaborator every pipeline
// stage uses to persist its `*_latest` artifact and a timestamped
// archive copy under a shared working directory, guarded by a
// per-directory file lock so concurrent writers can't interleave. See
// spec.md §5–§6.
package artifactstore
