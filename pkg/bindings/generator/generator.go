package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"text/template"
)

// utilPackage hosts the reflection helpers every generated file leans on.
const utilPackage = "github.com/docksock/docksock/pkg/bindings/internal/util"

var optionsTmpl = `package {{.PackageName}}

import (
	"net/url"

	"{{.UtilPackage}}"
)

/*
This file is generated automatically by go generate.  Do not edit.
*/

// Changed
func (o *{{.StructName}}) Changed(fieldName string) bool {
	return util.Changed(o, fieldName)
}

// ToParams
func (o *{{.StructName}}) ToParams() (url.Values, error) {
	return util.ToParams(o)
}
{{range .Fields}}
// With{{.Name}}
func (o *{{.StructName}}) With{{.Name}}(value {{.Type}}) *{{.StructName}} {
	v := {{.SetValue}}
	o.{{.Name}} = v
	return o
}

// Get{{.Name}}
func (o *{{.StructName}}) Get{{.Name}}() {{.Type}} {
	var {{.ZeroName}} {{.Type}}
	if o.{{.Name}} == nil {
		return {{.ZeroName}}
	}
	return {{.GetValue}}
}
{{end}}`

type field struct {
	Name       string
	StructName string
	Type       string
	ZeroName   string
	SetValue   string
	GetValue   string
}

type options struct {
	PackageName string
	UtilPackage string
	StructName  string
	Fields      []field
}

func main() {
	srcFile := os.Getenv("GOFILE")
	pkg := os.Getenv("GOPACKAGE")
	if srcFile == "" || pkg == "" {
		fail("GOFILE and GOPACKAGE must be set, run me through go generate")
	}
	if len(os.Args) < 2 {
		fail("usage: generator <StructName>")
	}
	structName := os.Args[1]

	src, err := os.ReadFile(srcFile)
	if err != nil {
		fail(err.Error())
	}
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, srcFile, src, parser.ParseComments)
	if err != nil {
		fail(err.Error())
	}
	structType := findStruct(parsed, structName)
	if structType == nil {
		fail(fmt.Sprintf("%s: struct %q not found", srcFile, structName))
	}

	data := options{
		PackageName: pkg,
		UtilPackage: utilPackage,
		StructName:  structName,
	}
	for _, f := range structType.Fields.List {
		if len(f.Names) == 0 {
			continue
		}
		name := f.Names[0].Name
		// Positions are byte offsets into src shifted by the fset base.
		fieldType := string(src[f.Type.Pos()-1 : f.Type.End()-1])
		entry := field{
			Name:       name,
			StructName: structName,
			ZeroName:   strings.ToLower(name[:1]) + name[1:],
		}
		if strings.HasPrefix(fieldType, "*") {
			entry.Type = strings.TrimPrefix(fieldType, "*")
			entry.SetValue = "&value"
			entry.GetValue = "*o." + name
		} else {
			entry.Type = fieldType
			entry.SetValue = "value"
			entry.GetValue = "o." + name
		}
		data.Fields = append(data.Fields, entry)
	}

	var buf bytes.Buffer
	if err := template.Must(template.New("options").Parse(optionsTmpl)).Execute(&buf, data); err != nil {
		fail(err.Error())
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fail(fmt.Sprintf("formatting generated code for %s: %v", structName, err))
	}

	outName := strings.TrimSuffix(srcFile, ".go") + "_" + strings.Replace(strings.ToLower(structName), "options", "_options", 1) + ".go"
	if err := os.WriteFile(outName, formatted, 0o644); err != nil {
		fail(err.Error())
	}
}

func findStruct(f *ast.File, name string) *ast.StructType {
	var structType *ast.StructType
	ast.Inspect(f, func(n ast.Node) bool {
		spec, ok := n.(*ast.TypeSpec)
		if !ok || spec.Name.Name != name {
			return true
		}
		if st, ok := spec.Type.(*ast.StructType); ok {
			structType = st
		}
		return false
	})
	return structType
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
