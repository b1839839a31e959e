package driver

import (
	"slate/internal/diag"
	"slate/internal/source"
)

// CheckResult — итог проверки одного файла.
type CheckResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Bag       *diag.Bag
	FromCache bool
}

// Check лексит и парсит файл ради диагностик. При наличии кэша результат
// ищется по хэшу содержимого: попадание отдаёт сохранённые диагностики без
// повторного разбора, промах — разбирает и пополняет кэш. Ошибки самого
// кэша не фатальны: проверка просто идёт без него.
func Check(path string, cache *DiskCache, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	key := Digest(file.Hash)

	if cache != nil {
		var payload DiskPayload
		if ok, err := cache.Get(key, &payload); err == nil && ok &&
			payload.Schema == diskCacheSchemaVersion {
			return &CheckResult{
				FileSet:   fs,
				File:      file,
				Bag:       payloadToBag(&payload, fileID, maxDiagnostics),
				FromCache: true,
			}, nil
		}
	}

	res := parseLoaded(fs, file, maxDiagnostics)
	if cache != nil {
		_ = cache.Put(key, bagToPayload(path, key, res.Bag))
	}
	return &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     res.Bag,
	}, nil
}
