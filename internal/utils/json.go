package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StdioPath selects stdin for reads and stdout for writes
const StdioPath = "-"

// ReadInput reads the whole file at path, or stdin for StdioPath
func ReadInput(path string) ([]byte, error) {
	if path == StdioPath {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// LoadJSON reads a JSON file and unmarshals it into the target interface.
func LoadJSON(path string, target interface{}) error {
	data, err := ReadInput(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// SaveJSON marshals the data and writes it to a JSON file.
func SaveJSON(path string, data interface{}, pretty bool) error {
	if path == StdioPath {
		return WriteJSON(os.Stdout, data, pretty)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := WriteJSON(f, data, pretty); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteJSON encodes data to w, indented when pretty is set
func WriteJSON(w io.Writer, data interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	return nil
}
