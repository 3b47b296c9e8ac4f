package apidoc

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/alnah/go-apidoc/internal/yamlutil"
)

// Kind is the type of a documented object.
// Larger values are presented first when members are grouped by kind.
type Kind int

const (
	KindVariable         Kind = 100
	KindProperty         Kind = 150
	KindInstanceVariable Kind = 200
	KindAttribute        Kind = 210
	KindSchemaField      Kind = 220
	KindClassVariable    Kind = 300
	KindTypeAlias        Kind = 305
	KindTypeVariable     Kind = 306
	KindConstant         Kind = 310
	KindFunction         Kind = 400
	KindMethod           Kind = 500
	KindStaticMethod     Kind = 600
	KindClassMethod      Kind = 700
	KindException        Kind = 750
	KindClass            Kind = 800
	KindInterface        Kind = 850
	KindModule           Kind = 900
	KindPackage          Kind = 1000
	KindNamespacePackage Kind = 1001
)

var kindNames = map[Kind]string{
	KindVariable:         "variable",
	KindProperty:         "property",
	KindInstanceVariable: "instance variable",
	KindAttribute:        "attribute",
	KindSchemaField:      "schema field",
	KindClassVariable:    "class variable",
	KindTypeAlias:        "type alias",
	KindTypeVariable:     "type variable",
	KindConstant:         "constant",
	KindFunction:         "function",
	KindMethod:           "method",
	KindStaticMethod:     "static method",
	KindClassMethod:      "class method",
	KindException:        "exception",
	KindClass:            "class",
	KindInterface:        "interface",
	KindModule:           "module",
	KindPackage:          "package",
	KindNamespacePackage: "namespace package",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind accepts the display name of a kind, case-insensitively.
// Underscores and hyphens may stand in for spaces ("class_method").
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for k, name := range kindNames {
		if name == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// HasOwnPage reports whether objects of this kind are rendered on a page of
// their own rather than inside their parent's page.
func (k Kind) HasOwnPage() bool {
	switch k {
	case KindPackage, KindNamespacePackage, KindModule, KindClass, KindInterface, KindException:
		return true
	default:
		return false
	}
}

// IsModule reports whether the kind is a module or a package.
func (k Kind) IsModule() bool {
	return k == KindModule || k == KindPackage || k == KindNamespacePackage
}

// IsClass reports whether the kind is class-like.
func (k Kind) IsClass() bool {
	return k == KindClass || k == KindInterface || k == KindException
}

// Object is one documented entity: a package, module, class, function, etc.
type Object struct {
	Name       string
	Kind       Kind
	Docstring  string
	LineNumber int
	Parent     *Object
	Members    []*Object
}

// FullName is the dotted path from the root object.
func (o *Object) FullName() string {
	if o.Parent == nil {
		return o.Name
	}
	return o.Parent.FullName() + "." + o.Name
}

// PageObject returns the object whose page documents o: o itself when its
// kind has its own page, otherwise the closest ancestor that does.
func (o *Object) PageObject() *Object {
	for p := o; p != nil; p = p.Parent {
		if p.Kind.HasOwnPage() {
			return p
		}
	}
	return o
}

// URL is the link to o relative to the output directory.
func (o *Object) URL() string {
	page := o.PageObject()
	url := page.FullName() + ".html"
	if page != o {
		url += "#" + o.Name
	}
	return url
}

// Ancestors returns the chain of parents, root first.
func (o *Object) Ancestors() []*Object {
	var chain []*Object
	for p := o.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	return chain
}

// Walk calls fn for o and every descendant in depth-first order.
// Returning false from fn skips the object's members.
func (o *Object) Walk(fn func(*Object) bool) {
	if !fn(o) {
		return
	}
	for _, m := range o.Members {
		m.Walk(fn)
	}
}

// Project is the object model of one documentation run.
type Project struct {
	Name      string
	DocFormat string
	Roots     []*Object
}

// AllObjects returns every object of the project in depth-first order.
func (p *Project) AllObjects() []*Object {
	var all []*Object
	for _, root := range p.Roots {
		root.Walk(func(o *Object) bool {
			all = append(all, o)
			return true
		})
	}
	return all
}

// Find returns the object with the given full name, or nil.
func (p *Project) Find(fullName string) *Object {
	for _, o := range p.AllObjects() {
		if o.FullName() == fullName {
			return o
		}
	}
	return nil
}

// modelFile is the on-disk form of a Project. JSON input is accepted as
// well since it is a subset of YAML.
type modelFile struct {
	Project   string        `yaml:"project"`
	DocFormat string        `yaml:"docformat"`
	Objects   []modelObject `yaml:"objects"`
}

type modelObject struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`
	Docstring string        `yaml:"docstring"`
	LineNo    int           `yaml:"lineno"`
	Members   []modelObject `yaml:"members"`
}

// ParseProject decodes a model document and links parents to members.
func ParseProject(data []byte) (*Project, error) {
	var mf modelFile
	if err := yamlutil.UnmarshalStrict(data, &mf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	return buildProject(mf)
}

// LoadProject reads and parses a model file. Files larger than
// yamlutil.MaxInputSize are rejected.
func LoadProject(path string) (*Project, error) {
	var mf modelFile
	if err := yamlutil.ReadFileStrict(path, &mf); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("reading model file: %w", err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidModel, path, err)
	}
	return buildProject(mf)
}

// reservedRootNames are the summary pages a root object's page would
// otherwise overwrite. Compared lowercased for case-insensitive file systems.
var reservedRootNames = map[string]bool{
	strings.ToLower(strings.TrimSuffix(indexTemplate, ".html")):     true,
	strings.ToLower(strings.TrimSuffix(nameIndexTemplate, ".html")): true,
}

func buildProject(mf modelFile) (*Project, error) {
	p := &Project{Name: mf.Project, DocFormat: mf.DocFormat}
	seen := make(map[string]bool, len(mf.Objects))
	for i, mo := range mf.Objects {
		root, err := buildObject(mo, nil, fmt.Sprintf("objects[%d]", i))
		if err != nil {
			return nil, err
		}
		if !root.Kind.IsModule() {
			return nil, fmt.Errorf("%w: root object %q must be a package or module, got %s",
				ErrInvalidModel, root.Name, root.Kind)
		}
		if reservedRootNames[strings.ToLower(root.Name)] {
			return nil, fmt.Errorf("%w: root object name %q is reserved for a summary page",
				ErrInvalidModel, root.Name)
		}
		if seen[root.Name] {
			return nil, fmt.Errorf("%w: duplicate root object %q", ErrInvalidModel, root.Name)
		}
		seen[root.Name] = true
		p.Roots = append(p.Roots, root)
	}
	return p, nil
}

func buildObject(mo modelObject, parent *Object, where string) (*Object, error) {
	if mo.Name == "" {
		return nil, fmt.Errorf("%w: %s: name is required", ErrInvalidModel, where)
	}
	if strings.ContainsAny(mo.Name, ". \t\n/\\") {
		return nil, fmt.Errorf("%w: %s: name %q must be a single identifier", ErrInvalidModel, where, mo.Name)
	}
	kind, err := ParseKind(mo.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %w", ErrInvalidModel, where, mo.Name, err)
	}
	if mo.LineNo < 0 {
		return nil, fmt.Errorf("%w: %s (%s): negative lineno %d", ErrInvalidModel, where, mo.Name, mo.LineNo)
	}

	o := &Object{
		Name:       mo.Name,
		Kind:       kind,
		Docstring:  mo.Docstring,
		LineNumber: mo.LineNo,
		Parent:     parent,
	}

	seen := make(map[string]bool, len(mo.Members))
	for i, child := range mo.Members {
		m, err := buildObject(child, o, fmt.Sprintf("%s.members[%d]", where, i))
		if err != nil {
			return nil, err
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("%w: duplicate member %q in %s", ErrInvalidModel, m.Name, o.FullName())
		}
		seen[m.Name] = true
		o.Members = append(o.Members, m)
	}
	return o, nil
}
