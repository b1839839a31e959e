package diagfmt

import "path/filepath"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull keeps the path as stored in the FileSet.
	PathModeFull PathMode = iota
	// PathModeBasename strips everything but the file name.
	PathModeBasename
)

func (m PathMode) format(path string) string {
	if m == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// ShowSource включает строку исходника с подчёркиванием под диагностикой.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col к байтовым смещениям
	PathMode         PathMode
	Max              int // обрезка вывода; 0 — без ограничения
}
