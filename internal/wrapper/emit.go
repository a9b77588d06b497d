package wrapper

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/jptrs93/protocompat/internal/wrapper/templates"
)

// LegacyImportPath is the import path of the legacy runtime used by adapter code.
const LegacyImportPath = "github.com/jptrs93/protocompat/legacy"

var wrapperTemplate = template.Must(template.ParseFS(templates.FS, "wrapper.tmpl"))

type fileData struct {
	Package string
	Source  string
	Imports []string
	Decls   []declData
}

type declData struct {
	Struct *structData
	Enum   *EnumType
}

type structData struct {
	Name    string
	New     bool
	Adapter string
	Fields  []MethodSet
}

// StructPlan is a struct with the accessors decided for each of its fields.
type StructPlan struct {
	Name   string
	Fields []MethodSet
}

// Emit renders the adapter file for unit. plans holds one entry per struct
// declaration of unit, in declaration order.
func Emit(unit *SourceUnit, plans []StructPlan, opt GenOpt, adapter Adapter) ([]byte, error) {
	data := fileData{
		Package: unit.Package,
		Source:  filepath.Base(unit.Path),
	}
	used := make(map[string]bool)
	next := 0
	for _, d := range unit.Decls {
		switch decl := d.(type) {
		case *StructType:
			if next >= len(plans) || plans[next].Name != decl.Name {
				return nil, fmt.Errorf("wrapper: no accessor plan for %s", decl.Name)
			}
			s := &structData{Name: decl.Name, New: opt.Contains(New), Fields: plans[next].Fields}
			next++
			used["sync"] = true
			if opt.Contains(MessageAdapter) {
				s.Adapter = adapter.String()
				used[LegacyImportPath] = true
				if adapter == AdapterGogo {
					used["io"] = true
				} else {
					used["fmt"] = true
				}
			}
			if needsLegacy(s.Fields) {
				used[LegacyImportPath] = true
			}
			data.Decls = append(data.Decls, declData{Struct: s})
		case *EnumType:
			data.Decls = append(data.Decls, declData{Enum: decl})
		}
	}
	for path := range used {
		data.Imports = append(data.Imports, path)
	}
	sort.Slice(data.Imports, func(i, j int) bool {
		a, b := data.Imports[i], data.Imports[j]
		if sa, sb := !strings.Contains(a, "."), !strings.Contains(b, "."); sa != sb {
			return sa
		}
		return a < b
	})

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("wrapper: render %s: %w", unit.Path, err)
	}
	out, err := imports.Process(outputName(unit.Path), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("wrapper: format %s: %w", unit.Path, err)
	}
	return out, nil
}

// needsLegacy reports whether any strict enum getter was emitted.
func needsLegacy(fields []MethodSet) bool {
	for _, set := range fields {
		for _, m := range set.Methods {
			if m.Category != Get {
				continue
			}
			for _, line := range m.Body {
				if strings.Contains(line, "legacy.") {
					return true
				}
			}
		}
	}
	return false
}

// outputName is the path of the adapter file generated for the file at path.
func outputName(path string) string {
	return filepath.Join(filepath.Dir(path), "wrapper_"+filepath.Base(path))
}
