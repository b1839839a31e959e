package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName — имя файла манифеста проекта.
const ManifestName = "slate.toml"

// Manifest описывает проект slate: метаданные и настройки проверки.
type Manifest struct {
	Project ProjectSection `toml:"project"`
	Check   CheckSection   `toml:"check"`
}

// ProjectSection holds project identity fields.
type ProjectSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	// Src — каталог с исходниками относительно корня проекта.
	Src string `toml:"src,omitempty"`
}

// CheckSection holds defaults for the check command.
type CheckSection struct {
	MaxDiagnostics int `toml:"max_diagnostics,omitempty"`
	Jobs           int `toml:"jobs,omitempty"`
}

// DefaultManifest возвращает манифест нового проекта.
func DefaultManifest(name string) *Manifest {
	return &Manifest{
		Project: ProjectSection{
			Name:    name,
			Version: "0.1.0",
			Src:     "src",
		},
	}
}

// LoadManifest читает и валидирует манифест из файла.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if m.Project.Name == "" {
		return nil, fmt.Errorf("%s: project.name is required", path)
	}
	return &m, nil
}

// SaveManifest сериализует манифест в файл.
func SaveManifest(path string, m *Manifest) error {
	f, err := os.Create(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SrcDir возвращает абсолютный путь к каталогу исходников проекта.
func (m *Manifest) SrcDir(root string) string {
	src := m.Project.Src
	if src == "" {
		src = "src"
	}
	return filepath.Join(root, src)
}
