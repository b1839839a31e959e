package ast

// BinOp перечисляет бинарные операторы выражений.
type BinOp uint8

const (
	// BinAdd is '+'.
	BinAdd BinOp = iota
	// BinSub is '-'.
	BinSub
	// BinMul is '*'.
	BinMul
	// BinDiv is '/'.
	BinDiv
	// BinMod is '%'.
	BinMod
	// BinAnd is logical '&'.
	BinAnd
	// BinOr is logical '|'.
	BinOr
)

func (op BinOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinMod:
		return "%"
	case BinAnd:
		return "&"
	case BinOr:
		return "|"
	}
	return "?"
}
