package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// newlineOffsets собирает смещения всех '\n' — это и есть построчный
// индекс файла: граница i завершает строку i+1.
func newlineOffsets(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol переводит байтовое смещение в (line, col), обе 1-based.
// Каждый \n завершает свою строку; смещение за концом текста прижимается
// к последней непустой строке (колонка считается от её начала).
func toLineCol(newlines []uint32, contentLen, off uint32) LineCol {
	if len(newlines) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: количество \n со смещением строго меньше off
	lo, hi := 0, len(newlines)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if newlines[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := lo // 0-based номер строки

	// Файл кончается на \n: пустой строки после него нет,
	// конец текста принадлежит последней настоящей строке.
	if off >= contentLen && contentLen > 0 &&
		line == len(newlines) && newlines[len(newlines)-1] == contentLen-1 {
		line--
	}

	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	return LineCol{Line: uint32(line + 1), Col: off - (newlines[line-1] + 1) + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
