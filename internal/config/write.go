package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/crumbs/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# crumbs configuration\n# Colors are ANSI numbers (\"6\") or hex (\"#7D56F4\").\n"

// Marshal renders the config as YAML with a short header comment.
func Marshal(cfg *File) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is a bug; please report it")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is a bug; please report it")
	}
	return buf.Bytes(), nil
}

// Write saves the config to path, creating parent directories as needed.
// An existing file is replaced.
func Write(path string, cfg *File) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Cannot create config directory "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Cannot write "+path,
			"Check file permissions")
	}
	return nil
}
