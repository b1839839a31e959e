package driver

import (
	"fortio.org/safecast"

	"slate/internal/ast"
	"slate/internal/diag"
	"slate/internal/lexer"
	"slate/internal/parser"
	"slate/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Exprs   []ast.Expr
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics), nil
}

// ParseText парсит текст напрямую (stdin, тесты).
func ParseText(name string, text []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, text)
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	p := parser.New(lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	exprs := p.Parse()

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Exprs:   exprs,
		Bag:     bag,
	}
}
