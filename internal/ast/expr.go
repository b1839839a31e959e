package ast

import (
	"slate/internal/source"
)

// Node represents any AST node with an associated source span.
type Node interface {
	Span() source.Span
}

// Expr represents an expression node. The set of implementations is closed:
// switches over Expr are expected to be exhaustive.
type Expr interface {
	Node
	exprNode()
}

// Ident — имя со спаном. Листовые узлы хранят свои спаны; составные узлы
// своих спанов не хранят и восстанавливают их из листьев через Span().
type Ident struct {
	Name string
	span source.Span
}

// NewIdent constructs a named leaf with its originating span.
func NewIdent(name string, span source.Span) Ident {
	return Ident{Name: name, span: span}
}

// Span returns the identifier's source span.
func (id Ident) Span() source.Span { return id.span }

// Valid reports whether the identifier carries a name.
func (id Ident) Valid() bool { return id.Name != "" }

// Field is one `name : type` pair in a struct body or parameter list.
type Field struct {
	Name Ident
	Type Ident
}

// FieldInit is one `.name = expr` entry of a construct literal.
type FieldInit struct {
	Name  Ident
	Value Expr
}

// ErrorExpr is the parse-failure placeholder. It is always paired with an
// already-emitted diagnostic.
type ErrorExpr struct{}

func (*ErrorExpr) Span() source.Span { return source.Span{} }
func (*ErrorExpr) exprNode()         {}

// VarExpr is an identifier reference.
type VarExpr struct {
	Name string
	span source.Span
}

func NewVarExpr(name string, span source.Span) *VarExpr {
	return &VarExpr{Name: name, span: span}
}

func (e *VarExpr) Span() source.Span { return e.span }
func (e *VarExpr) exprNode()         {}

// NumExpr is an unsigned integer literal.
type NumExpr struct {
	Value uint64
	span  source.Span
}

func NewNumExpr(value uint64, span source.Span) *NumExpr {
	return &NumExpr{Value: value, span: span}
}

func (e *NumExpr) Span() source.Span { return e.span }
func (e *NumExpr) exprNode()         {}

// CharLitExpr is a character literal (decoded text).
type CharLitExpr struct {
	Text string
	span source.Span
}

func NewCharLitExpr(text string, span source.Span) *CharLitExpr {
	return &CharLitExpr{Text: text, span: span}
}

func (e *CharLitExpr) Span() source.Span { return e.span }
func (e *CharLitExpr) exprNode()         {}

// StringLitExpr is a string literal (decoded text).
type StringLitExpr struct {
	Text string
	span source.Span
}

func NewStringLitExpr(text string, span source.Span) *StringLitExpr {
	return &StringLitExpr{Text: text, span: span}
}

func (e *StringLitExpr) Span() source.Span { return e.span }
func (e *StringLitExpr) exprNode()         {}

// NegExpr is unary negation. `--5` parses as Neg(Neg(5)).
type NegExpr struct {
	Operand Expr
}

func (e *NegExpr) Span() source.Span { return e.Operand.Span() }
func (e *NegExpr) exprNode()         {}

// BinaryExpr is a binary arithmetic or logical operation.
type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Span() source.Span { return coverSpans(e.Left.Span(), e.Right.Span()) }
func (e *BinaryExpr) exprNode()         {}

// AssignExpr is a generic assignment to a non-declaration target.
type AssignExpr struct {
	Target Expr
	Value  Expr
}

func (e *AssignExpr) Span() source.Span { return coverSpans(e.Target.Span(), e.Value.Span()) }
func (e *AssignExpr) exprNode()         {}

// StructDecl is a struct type declaration: `Name = struct { a: int, ... }`.
type StructDecl struct {
	Name   Ident
	Fields []Field
}

func (e *StructDecl) Span() source.Span {
	sp := e.Name.Span()
	for _, f := range e.Fields {
		sp = coverSpans(sp, f.Name.Span())
		sp = coverSpans(sp, f.Type.Span())
	}
	return sp
}
func (e *StructDecl) exprNode() {}

// Block holds an ordered function body. A nil *Block on FnDecl marks a
// forward declaration; a Block with no exprs is an empty-bodied definition.
type Block struct {
	Exprs []Expr
}

// FnDecl is a function declaration or definition:
// `Name = (a: int, ...) -> type { ... }` or `... ;`.
type FnDecl struct {
	Name    Ident
	Params  []Field
	RetType Ident
	Body    *Block
}

// IsDefinition reports whether the node carries a body (possibly empty).
func (e *FnDecl) IsDefinition() bool { return e.Body != nil }

func (e *FnDecl) Span() source.Span {
	sp := e.Name.Span()
	for _, p := range e.Params {
		sp = coverSpans(sp, p.Name.Span())
		sp = coverSpans(sp, p.Type.Span())
	}
	sp = coverSpans(sp, e.RetType.Span())
	if e.Body != nil {
		for _, b := range e.Body.Exprs {
			sp = coverSpans(sp, b.Span())
		}
	}
	return sp
}
func (e *FnDecl) exprNode() {}

// VarDecl is `name : type` with an optional `= value`.
type VarDecl struct {
	Name  Ident
	Type  Ident
	Value Expr // nil для объявления без инициализатора
}

func (e *VarDecl) Span() source.Span {
	sp := coverSpans(e.Name.Span(), e.Type.Span())
	if e.Value != nil {
		sp = coverSpans(sp, e.Value.Span())
	}
	return sp
}
func (e *VarDecl) exprNode() {}

// ConstructExpr is a struct literal: `Name { .field = expr, ... }`.
type ConstructExpr struct {
	Name   Ident
	Fields []FieldInit
}

func (e *ConstructExpr) Span() source.Span {
	sp := e.Name.Span()
	for _, f := range e.Fields {
		sp = coverSpans(sp, f.Name.Span())
		if f.Value != nil {
			sp = coverSpans(sp, f.Value.Span())
		}
	}
	return sp
}
func (e *ConstructExpr) exprNode() {}

// FieldAccessExpr is `name.field`.
type FieldAccessExpr struct {
	Name  Ident
	Field Ident
}

func (e *FieldAccessExpr) Span() source.Span {
	return coverSpans(e.Name.Span(), e.Field.Span())
}
func (e *FieldAccessExpr) exprNode() {}

// RetExpr is `ret;` or `ret expr;`.
type RetExpr struct {
	Value Expr // nil для ret без значения
}

func (e *RetExpr) Span() source.Span {
	if e.Value != nil {
		return e.Value.Span()
	}
	return source.Span{}
}
func (e *RetExpr) exprNode() {}

// coverSpans объединяет спаны, игнорируя пустые (например, от Error-узлов).
func coverSpans(a, b source.Span) source.Span {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return a.Cover(b)
}
