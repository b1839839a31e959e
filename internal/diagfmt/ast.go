package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"slate/internal/ast"
	"slate/internal/source"
)

// FormatASTPretty печатает дерево с отступами, по узлу на строку.
// Спаны резолвятся в line:col для листовых узлов.
func FormatASTPretty(w io.Writer, exprs []ast.Expr, fs *source.FileSet) error {
	for _, e := range exprs {
		writeNode(w, e, fs, 0)
	}
	return nil
}

func writeNode(w io.Writer, e ast.Expr, fs *source.FileSet, depth int) {
	indent := strings.Repeat("  ", depth)
	loc := func(sp source.Span) string {
		if sp.Empty() {
			return ""
		}
		start, _ := fs.Resolve(sp)
		return fmt.Sprintf(" @%d:%d", start.Line, start.Col)
	}

	switch n := e.(type) {
	case *ast.ErrorExpr:
		fmt.Fprintf(w, "%sError\n", indent)
	case *ast.VarExpr:
		fmt.Fprintf(w, "%sVar %s%s\n", indent, n.Name, loc(n.Span()))
	case *ast.NumExpr:
		fmt.Fprintf(w, "%sNum %d%s\n", indent, n.Value, loc(n.Span()))
	case *ast.CharLitExpr:
		fmt.Fprintf(w, "%sChar %q%s\n", indent, n.Text, loc(n.Span()))
	case *ast.StringLitExpr:
		fmt.Fprintf(w, "%sString %q%s\n", indent, n.Text, loc(n.Span()))
	case *ast.NegExpr:
		fmt.Fprintf(w, "%sNeg\n", indent)
		writeNode(w, n.Operand, fs, depth+1)
	case *ast.BinaryExpr:
		fmt.Fprintf(w, "%sBinary %s\n", indent, n.Op)
		writeNode(w, n.Left, fs, depth+1)
		writeNode(w, n.Right, fs, depth+1)
	case *ast.AssignExpr:
		fmt.Fprintf(w, "%sAssign\n", indent)
		writeNode(w, n.Target, fs, depth+1)
		writeNode(w, n.Value, fs, depth+1)
	case *ast.FieldAccessExpr:
		fmt.Fprintf(w, "%sFieldAccess %s.%s%s\n", indent, n.Name.Name, n.Field.Name, loc(n.Span()))
	case *ast.VarDecl:
		fmt.Fprintf(w, "%sVarDecl %s: %s%s\n", indent, n.Name.Name, n.Type.Name, loc(n.Name.Span()))
		if n.Value != nil {
			writeNode(w, n.Value, fs, depth+1)
		}
	case *ast.StructDecl:
		fmt.Fprintf(w, "%sStructDecl %s%s\n", indent, n.Name.Name, loc(n.Name.Span()))
		for _, f := range n.Fields {
			fmt.Fprintf(w, "%s  Field %s: %s\n", indent, f.Name.Name, f.Type.Name)
		}
	case *ast.FnDecl:
		kind := "FnDecl"
		if n.IsDefinition() {
			kind = "FnDef"
		}
		fmt.Fprintf(w, "%s%s %s%s\n", indent, kind, n.Name.Name, loc(n.Name.Span()))
		for _, prm := range n.Params {
			fmt.Fprintf(w, "%s  Param %s: %s\n", indent, prm.Name.Name, prm.Type.Name)
		}
		if n.RetType.Valid() {
			fmt.Fprintf(w, "%s  RetType %s\n", indent, n.RetType.Name)
		}
		if n.Body != nil {
			for _, b := range n.Body.Exprs {
				writeNode(w, b, fs, depth+1)
			}
		}
	case *ast.ConstructExpr:
		fmt.Fprintf(w, "%sConstruct %s%s\n", indent, n.Name.Name, loc(n.Name.Span()))
		for _, f := range n.Fields {
			fmt.Fprintf(w, "%s  Init .%s\n", indent, f.Name.Name)
			writeNode(w, f.Value, fs, depth+2)
		}
	case *ast.RetExpr:
		fmt.Fprintf(w, "%sRet\n", indent)
		if n.Value != nil {
			writeNode(w, n.Value, fs, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s<%T>\n", indent, e)
	}
}

// ASTNodeJSON — универсальный JSON-узел дерева.
type ASTNodeJSON struct {
	Kind     string        `json:"kind"`
	Name     string        `json:"name,omitempty"`
	Type     string        `json:"type,omitempty"`
	Op       string        `json:"op,omitempty"`
	Value    string        `json:"value,omitempty"`
	Span     *source.Span  `json:"span,omitempty"`
	Children []ASTNodeJSON `json:"children,omitempty"`
}

// FormatASTJSON сериализует дерево в JSON.
func FormatASTJSON(w io.Writer, exprs []ast.Expr) error {
	nodes := make([]ASTNodeJSON, 0, len(exprs))
	for _, e := range exprs {
		nodes = append(nodes, astNodeJSON(e))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(nodes)
}

func astNodeJSON(e ast.Expr) ASTNodeJSON {
	span := func(sp source.Span) *source.Span {
		if sp.Empty() {
			return nil
		}
		return &sp
	}

	switch n := e.(type) {
	case *ast.ErrorExpr:
		return ASTNodeJSON{Kind: "error"}
	case *ast.VarExpr:
		return ASTNodeJSON{Kind: "var", Name: n.Name, Span: span(n.Span())}
	case *ast.NumExpr:
		return ASTNodeJSON{Kind: "num", Value: fmt.Sprintf("%d", n.Value), Span: span(n.Span())}
	case *ast.CharLitExpr:
		return ASTNodeJSON{Kind: "char", Value: n.Text, Span: span(n.Span())}
	case *ast.StringLitExpr:
		return ASTNodeJSON{Kind: "string", Value: n.Text, Span: span(n.Span())}
	case *ast.NegExpr:
		return ASTNodeJSON{Kind: "neg", Children: []ASTNodeJSON{astNodeJSON(n.Operand)}}
	case *ast.BinaryExpr:
		return ASTNodeJSON{
			Kind: "binary", Op: n.Op.String(),
			Children: []ASTNodeJSON{astNodeJSON(n.Left), astNodeJSON(n.Right)},
		}
	case *ast.AssignExpr:
		return ASTNodeJSON{
			Kind:     "assign",
			Children: []ASTNodeJSON{astNodeJSON(n.Target), astNodeJSON(n.Value)},
		}
	case *ast.FieldAccessExpr:
		return ASTNodeJSON{Kind: "field_access", Name: n.Name.Name, Value: n.Field.Name, Span: span(n.Span())}
	case *ast.VarDecl:
		out := ASTNodeJSON{Kind: "var_decl", Name: n.Name.Name, Type: n.Type.Name, Span: span(n.Name.Span())}
		if n.Value != nil {
			out.Children = []ASTNodeJSON{astNodeJSON(n.Value)}
		}
		return out
	case *ast.StructDecl:
		out := ASTNodeJSON{Kind: "struct_decl", Name: n.Name.Name, Span: span(n.Name.Span())}
		for _, f := range n.Fields {
			out.Children = append(out.Children, ASTNodeJSON{Kind: "field", Name: f.Name.Name, Type: f.Type.Name})
		}
		return out
	case *ast.FnDecl:
		kind := "fn_decl"
		if n.IsDefinition() {
			kind = "fn_def"
		}
		out := ASTNodeJSON{Kind: kind, Name: n.Name.Name, Type: n.RetType.Name, Span: span(n.Name.Span())}
		for _, prm := range n.Params {
			out.Children = append(out.Children, ASTNodeJSON{Kind: "param", Name: prm.Name.Name, Type: prm.Type.Name})
		}
		if n.Body != nil {
			for _, b := range n.Body.Exprs {
				out.Children = append(out.Children, astNodeJSON(b))
			}
		}
		return out
	case *ast.ConstructExpr:
		out := ASTNodeJSON{Kind: "construct", Name: n.Name.Name, Span: span(n.Name.Span())}
		for _, f := range n.Fields {
			out.Children = append(out.Children, ASTNodeJSON{
				Kind: "init", Name: f.Name.Name,
				Children: []ASTNodeJSON{astNodeJSON(f.Value)},
			})
		}
		return out
	case *ast.RetExpr:
		out := ASTNodeJSON{Kind: "ret"}
		if n.Value != nil {
			out.Children = []ASTNodeJSON{astNodeJSON(n.Value)}
		}
		return out
	default:
		return ASTNodeJSON{Kind: fmt.Sprintf("%T", e)}
	}
}
