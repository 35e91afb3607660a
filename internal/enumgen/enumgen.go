// Package enumgen turns a YAML enum declaration into Go source that wires
// each enum type to a garnish.Enum table and every serialization host.
package enumgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Declaration errors.
var (
	ErrInvalidName = errors.New("invalid identifier")
	ErrDuplicate   = errors.New("duplicate declaration")
	ErrEmpty       = errors.New("empty declaration")
)

// File is one enum declaration file.
type File struct {
	Package string `yaml:"package"`
	Enums   []Enum `yaml:"enums"`
}

// Enum declares one closed enum type.
type Enum struct {
	Name     string    `yaml:"name"`
	Doc      string    `yaml:"doc"`
	Variants []Variant `yaml:"variants"`
}

// Variant declares one member. Name is appended to the enum name to form
// the constant; Literal is the wire form.
type Variant struct {
	Name    string `yaml:"name"`
	Literal string `yaml:"literal"`
}

// Load reads and validates the declaration at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a declaration. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode declaration: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every generated identifier is legal and unique and
// that each enum is a bijection between variants and literals.
func (f *File) Validate() error {
	if !token.IsIdentifier(f.Package) {
		return fmt.Errorf("%w: package %q", ErrInvalidName, f.Package)
	}
	if len(f.Enums) == 0 {
		return fmt.Errorf("%w: no enums", ErrEmpty)
	}

	idents := make(map[string]string)
	claim := func(ident, owner string) error {
		if prev, ok := idents[ident]; ok {
			return fmt.Errorf("%w: %s generated by both %s and %s", ErrDuplicate, ident, prev, owner)
		}
		idents[ident] = owner
		return nil
	}

	for _, e := range f.Enums {
		if !token.IsIdentifier(e.Name) {
			return fmt.Errorf("%w: enum %q", ErrInvalidName, e.Name)
		}
		if len(e.Variants) == 0 {
			return fmt.Errorf("%w: enum %s has no variants", ErrEmpty, e.Name)
		}
		for _, ident := range []string{e.Name, e.TableVar(), e.ValuesFunc(), e.ParseFunc()} {
			if err := claim(ident, "enum "+e.Name); err != nil {
				return err
			}
		}

		literals := make(map[string]string, len(e.Variants))
		for _, v := range e.Variants {
			owner := e.Name + "." + v.Name
			if !token.IsIdentifier(v.Name) || !token.IsIdentifier(e.ConstName(v)) {
				return fmt.Errorf("%w: variant %q of %s", ErrInvalidName, v.Name, e.Name)
			}
			if v.Literal == "" {
				return fmt.Errorf("%w: %s has no literal", ErrEmpty, owner)
			}
			if prev, ok := literals[v.Literal]; ok {
				return fmt.Errorf("%w: literal %q used by %s and %s", ErrDuplicate, v.Literal, prev, owner)
			}
			literals[v.Literal] = owner
			if err := claim(e.ConstName(v), owner); err != nil {
				return err
			}
		}
	}
	return nil
}

// ConstName is the constant declared for v.
func (e Enum) ConstName(v Variant) string { return e.Name + v.Name }

// TableVar is the package variable holding the garnish.Enum.
func (e Enum) TableVar() string { return lowerFirst(e.Name) + "Enum" }

// ValuesFunc lists every declared value.
func (e Enum) ValuesFunc() string { return e.Name + "Values" }

// ParseFunc maps a literal back to its value.
func (e Enum) ParseFunc() string { return "Parse" + upperFirst(e.Name) }

// Generate renders f as gofmt'd Go source. source names the declaration
// in the generated header.
func Generate(f *File, source string) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		*File
		Source string
	}{f, source})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func docComment(e Enum) string {
	doc := strings.TrimSpace(e.Doc)
	if doc == "" {
		doc = e.Name + " is a closed enum."
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}

var fileTemplate = template.Must(template.New("enum").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"doc":   docComment,
}).Parse(`// Code generated by garnish-enum from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/garnish"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)
{{range $e := .Enums}}
{{doc $e}}
type {{$e.Name}} int

const (
{{- range $i, $v := $e.Variants}}
	{{$e.ConstName $v}}{{if eq $i 0}} {{$e.Name}} = iota{{end}}
{{- end}}
)

var {{$e.TableVar}} = garnish.NewEnum({{quote $e.Name}},
{{- range $e.Variants}}
	garnish.Variant[{{$e.Name}}]{Value: {{$e.ConstName .}}, Literal: {{quote .Literal}}},
{{- end}}
)

// {{$e.ValuesFunc}} returns every {{$e.Name}} in declaration order.
func {{$e.ValuesFunc}}() []{{$e.Name}} { return {{$e.TableVar}}.Values() }

// {{$e.ParseFunc}} returns the {{$e.Name}} whose literal is s.
func {{$e.ParseFunc}}(s string) ({{$e.Name}}, error) { return {{$e.TableVar}}.Parse(s) }

func (v {{$e.Name}}) String() string { return {{$e.TableVar}}.String(v) }

// IsValid reports whether v is a declared {{$e.Name}}.
func (v {{$e.Name}}) IsValid() bool { return {{$e.TableVar}}.Contains(v) }

func ({{$e.Name}}) GarnishKind() garnish.Kind { return garnish.KindEnum }

func (v {{$e.Name}}) MarshalText() ([]byte, error) {
	return {{$e.TableVar}}.MarshalText(v)
}

func (v *{{$e.Name}}) UnmarshalText(text []byte) error {
	return {{$e.TableVar}}.UnmarshalText(v, text)
}

func (v {{$e.Name}}) MarshalJSON() ([]byte, error) {
	return {{$e.TableVar}}.MarshalJSON(v)
}

func (v *{{$e.Name}}) UnmarshalJSON(data []byte) error {
	return {{$e.TableVar}}.UnmarshalJSON(v, data)
}

func (v {{$e.Name}}) MarshalYAML() (any, error) {
	return {{$e.TableVar}}.MarshalYAML(v)
}

func (v *{{$e.Name}}) UnmarshalYAML(node *yaml.Node) error {
	return {{$e.TableVar}}.UnmarshalYAML(v, node)
}

func (v {{$e.Name}}) EncodeMsgpack(enc *msgpack.Encoder) error {
	return {{$e.TableVar}}.EncodeMsgpack(enc, v)
}

func (v *{{$e.Name}}) DecodeMsgpack(dec *msgpack.Decoder) error {
	return {{$e.TableVar}}.DecodeMsgpack(dec, v)
}

func (v {{$e.Name}}) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return {{$e.TableVar}}.MarshalBSONValue(v)
}

func (v *{{$e.Name}}) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return {{$e.TableVar}}.UnmarshalBSONValue(v, t, data)
}
{{end}}`))
