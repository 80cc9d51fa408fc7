package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSONArtifact marshals v and overwrites the artifact at path. The
// parent directory is created if needed. Nothing is written until marshalling
// has fully succeeded, so a failed run leaves any previous artifact intact.
func WriteJSONArtifact(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact for %s: %w", path, err)
	}
	return WriteArtifact(path, append(data, '\n'))
}

// WriteArtifact overwrites the file at path with data, creating the parent
// directory if needed.
func WriteArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return nil
}
