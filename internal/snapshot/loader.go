// Package snapshot loads and validates the prefetched caller snapshot
// the engine resolves from. The engine itself performs no I/O; this is
// the ingestion surface used by the CLI and other collaborators.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/tutorstate/internal/resolve"
)

// SupportedSchemaVersion is the snapshot wire version this build
// understands. Snapshots with a different major version are rejected.
const SupportedSchemaVersion = "v1.0.0"

// ErrInvalidSnapshot indicates the snapshot JSON failed structural
// validation.
type ErrInvalidSnapshot struct {
	Err error
}

func (e *ErrInvalidSnapshot) Error() string {
	return fmt.Sprintf("invalid snapshot: %v", e.Err)
}

func (e *ErrInvalidSnapshot) Unwrap() error { return e.Err }

// ErrIncompatibleVersion indicates the snapshot's schema version cannot
// be consumed by this build.
type ErrIncompatibleVersion struct {
	Version string
}

func (e *ErrIncompatibleVersion) Error() string {
	return fmt.Sprintf("incompatible snapshot schema version %q (supported: %s)",
		e.Version, SupportedSchemaVersion)
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var parsed any
	if err := json.Unmarshal([]byte(snapshotSchema), &parsed); err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://snapshot.json", parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://snapshot.json")
})

// Parse validates raw snapshot JSON and decodes it.
func Parse(raw []byte) (*resolve.Snapshot, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidSnapshot{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidSnapshot{Err: err}
	}

	var snap resolve.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, &ErrInvalidSnapshot{Err: err}
	}

	if !semver.IsValid(snap.SchemaVersion) ||
		semver.Major(snap.SchemaVersion) != semver.Major(SupportedSchemaVersion) {
		return nil, &ErrIncompatibleVersion{Version: snap.SchemaVersion}
	}

	return &snap, nil
}

// Load reads and parses a snapshot file.
func Load(path string) (*resolve.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(raw)
}
