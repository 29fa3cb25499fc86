package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"gopkg.in/yaml.v3"
)

// FileWriterAdapter writes generator outputs to the local filesystem
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteBytecode writes the bytecode followed by a newline, creating parent directories
func (f *FileWriterAdapter) WriteBytecode(ctx context.Context, path string, bytecode string) error {
	if err := f.EnsureDirectory(ctx, filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(bytecode+"\n"), 0644)
}

// WriteParams writes params as JSON when path ends in .json and as YAML otherwise
func (f *FileWriterAdapter) WriteParams(ctx context.Context, path string, params *domain.DerivedParameters) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(params, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(params)
	}
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}

	if err := f.EnsureDirectory(ctx, filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectory ensures a directory exists
func (f *FileWriterAdapter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.BytecodeWriter = (*FileWriterAdapter)(nil)
	_ usecase.ParamsWriter   = (*FileWriterAdapter)(nil)
)
