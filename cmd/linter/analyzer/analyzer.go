package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "transportcalls"
	analyzerDoc  = "reports panic anywhere, and process exits or default HTTP transport use outside func main"
)

// Analyzer keeps process exits in main and the outbound HTTP client injectable.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

type selector struct {
	pkg  string
	name string
}

// Selectors allowed only inside func main of package main.
var restricted = map[selector]string{
	{pkg: "log", name: "Fatal"}:              "log.Fatal is forbidden outside main function",
	{pkg: "os", name: "Exit"}:                "os.Exit is forbidden outside main function",
	{pkg: "net/http", name: "DefaultClient"}: "http.DefaultClient bypasses the injected client",
	{pkg: "net/http", name: "Get"}:           "http.Get bypasses the injected client",
	{pkg: "net/http", name: "Head"}:          "http.Head bypasses the injected client",
	{pkg: "net/http", name: "Post"}:          "http.Post bypasses the injected client",
	{pkg: "net/http", name: "PostForm"}:      "http.PostForm bypasses the injected client",
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.SelectorExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		switch n := node.(type) {
		case *ast.CallExpr:
			checkPanic(pass, n)
		case *ast.SelectorExpr:
			checkSelector(pass, n, stack)
		}

		return true
	})

	return nil, nil
}

func checkPanic(pass *analysis.Pass, call *ast.CallExpr) {
	ident, ok := call.Fun.(*ast.Ident)
	if !ok || ident.Name != "panic" {
		return
	}

	if _, builtin := pass.TypesInfo.Uses[ident].(*types.Builtin); builtin {
		pass.Reportf(call.Pos(), "panic is forbidden")
	}
}

func checkSelector(pass *analysis.Pass, sel *ast.SelectorExpr, stack []ast.Node) {
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return
	}

	msg, ok := restricted[selector{pkg: pkgName.Imported().Path(), name: sel.Sel.Name}]
	if !ok || inMainFunc(pass, stack) {
		return
	}

	pass.Reportf(sel.Pos(), "%s", msg)
}

// inMainFunc reports whether the innermost declared function on the stack is
// func main of package main. Function literals inside main count as main.
func inMainFunc(pass *analysis.Pass, stack []ast.Node) bool {
	if pass.Pkg.Name() != "main" {
		return false
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if fn, ok := stack[i].(*ast.FuncDecl); ok {
			return fn.Recv == nil && fn.Name.Name == "main"
		}
	}

	return false
}
