package wrapper

import (
	"fmt"
	"log/slog"
	"os"
)

// OutputUnit is the generated adapter source for one input file.
type OutputUnit struct {
	Path    string
	Content []byte
}

// Generator runs the load, classify, synthesize and emit steps for one file
// at a time. It keeps no state between files.
type Generator struct {
	Opt     GenOpt
	Adapter Adapter
	Logger  *slog.Logger
}

func (g Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Logger
}

// GenerateFile builds the adapter for the minimal-style file at path.
func (g Generator) GenerateFile(path string, namespace []string) (OutputUnit, error) {
	unit, err := Load(path, namespace)
	if err != nil {
		return OutputUnit{}, err
	}
	return g.Generate(unit)
}

// Generate builds the adapter for an already loaded unit.
func (g Generator) Generate(unit *SourceUnit) (OutputUnit, error) {
	log := g.logger().With("file", unit.Path)
	var plans []StructPlan
	for _, d := range unit.Decls {
		st, ok := d.(*StructType)
		if !ok {
			log.Debug("enum", "name", d.DeclName(), "variants", len(d.(*EnumType).Variants))
			continue
		}
		plan := StructPlan{Name: st.Name}
		for _, field := range st.Fields {
			kind, err := Classify(st.Name, field, st.Scope)
			if err != nil {
				return OutputUnit{}, err
			}
			if n := unresolved(kind); n > 0 {
				log.Warn("reference escapes the file scope", "message", st.Name, "field", field.Name, "unresolved", n)
			}
			set := Synthesize(field, kind, g.Opt)
			log.Debug("field", "message", st.Name, "field", field.Name, "kind", kind.String(), "methods", len(set.Methods))
			plan.Fields = append(plan.Fields, set)
		}
		if err := g.checkNames(st, plan); err != nil {
			return OutputUnit{}, err
		}
		plans = append(plans, plan)
	}
	content, err := Emit(unit, plans, g.Opt, g.Adapter)
	if err != nil {
		return OutputUnit{}, err
	}
	return OutputUnit{Path: outputName(unit.Path), Content: content}, nil
}

func unresolved(kind FieldKind) int {
	switch k := unwrapOptional(kind).(type) {
	case RepeatedKind:
		return k.Unresolved
	case MessageKind:
		return k.Unresolved
	}
	return 0
}

// adapterMethods are the struct-level methods of each message contract.
var adapterMethods = map[Adapter][]string{
	AdapterLegacy: {"Reset", "String", "ProtoMessage", "Size", "Marshal", "Unmarshal", "DefaultInstance"},
	AdapterGogo:   {"Reset", "ProtoMessage", "Size", "Marshal", "MarshalTo", "Unmarshal"},
}

// checkNames rejects a plan whose methods would share a name with a field of
// st, with the minimal file's Encode method or with each other.
func (g Generator) checkNames(st *StructType, plan StructPlan) error {
	owner := make(map[string]string, len(st.Fields))
	for _, f := range st.Fields {
		owner[f.Name] = "field " + f.Name
	}
	if g.Opt.Contains(MessageAdapter) {
		for _, name := range adapterMethods[g.Adapter] {
			for _, f := range st.Fields {
				if f.Name == name {
					return collision(st.Name, f, "method "+name, owner[name])
				}
			}
			owner[name] = "method " + name
		}
	}
	owner["Encode"] = "method Encode"
	for _, set := range plan.Fields {
		for _, m := range set.Methods {
			if prev, ok := owner[m.Name]; ok {
				return collision(st.Name, set.Field, "accessor "+m.Name, prev)
			}
			owner[m.Name] = "accessor " + m.Name + " of " + set.Field.Name
		}
	}
	return nil
}

func collision(typeName string, f FieldDecl, what, prev string) error {
	return &FieldError{
		Type:    typeName,
		Field:   f.Name,
		Tag:     f.Tag,
		Message: fmt.Sprintf("%s collides with %s", what, prev),
	}
}

// Job names one minimal-style input and its namespace.
type Job struct {
	Path      string
	Namespace []string
}

// Run generates and writes the adapter of every job in order. Each unit is
// written before the next is loaded and the first failure stops the run.
func (g Generator) Run(jobs []Job) ([]OutputUnit, error) {
	outs := make([]OutputUnit, 0, len(jobs))
	for _, job := range jobs {
		out, err := g.GenerateFile(job.Path, job.Namespace)
		if err != nil {
			return outs, err
		}
		if err := WriteFile(out); err != nil {
			return outs, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// WriteFile writes out to disk. The file is closed on every path; a failed
// write may leave it incomplete.
func WriteFile(out OutputUnit) (err error) {
	f, err := os.Create(out.Path)
	if err != nil {
		return &IOError{Op: "create", Path: out.Path, Cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: out.Path, Cause: cerr}
		}
	}()
	if _, err := f.Write(out.Content); err != nil {
		return &IOError{Op: "write", Path: out.Path, Cause: err}
	}
	return nil
}
