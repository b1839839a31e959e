package source

type (
	// FileID — индекс файла внутри его FileSet. Спаны носят его с собой,
	// поэтому диагностику можно отрезолвить без ссылки на сам File.
	FileID uint32
	// FileFlags — происхождение файла и применённые нормализации.
	FileFlags uint8
)

const (
	// FileVirtual — содержимое пришло из памяти (тест, stdin), не с диска.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM — входные байты начинались с UTF-8 BOM; он срезан.
	FileHadBOM
	// FileNormalizedCRLF — переводы строк CRLF заменены на '\n'.
	FileNormalizedCRLF
)

// File — один исходный файл после нормализации: содержимое плюс всё,
// что нужно для перевода спанов в строку/колонку и для ключей кэша.
type File struct {
	ID       FileID
	Path     string
	Content  []byte   // нормализованные байты: без BOM, переводы строк '\n'
	Newlines []uint32 // смещения каждого '\n' в Content по возрастанию
	Hash     [32]byte // sha256 от Content, ключ дискового кэша
	Flags    FileFlags
}

// LineCol — позиция для человека; строка и колонка считаются с единицы.
type LineCol struct {
	Line uint32
	Col  uint32
}
