package apidoc

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/alnah/go-apidoc/internal/assets"
)

// Class is a constructor registered under a dotted name. The value it
// returns is checked against the expected capability when loaded.
type Class struct {
	Doc string
	New func(env *Env) (any, error)
}

// Env carries what a class constructor may need.
type Env struct {
	Options     Options
	OutputDir   string
	ProjectName string // overrides the model's project name on every page
	Lookup      *assets.Lookup
	System      System // nil while the system itself is being built
	Logger      *slog.Logger
	Workers     int
}

// logger returns the env logger or a discarding one.
func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Entry describes one registered symbol.
type Entry struct {
	Name    string
	Doc     string
	IsClass bool
}

// Registry maps dotted names to symbols. A module is the part of the
// dotted name before the last dot. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]map[string]any)}
}

// Register adds sym under dotted. Registering the same name twice fails.
func (r *Registry) Register(dotted string, sym any) error {
	module, name, err := splitDotted(dotted)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	syms, ok := r.modules[module]
	if !ok {
		syms = make(map[string]any)
		r.modules[module] = syms
	}
	if _, dup := syms[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, dotted)
	}
	syms[name] = sym
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(dotted string, sym any) {
	if err := r.Register(dotted, sym); err != nil {
		panic(err)
	}
}

// lookup reports whether the module exists and returns the symbol if any.
func (r *Registry) lookup(module, name string) (sym any, moduleFound, found bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syms, ok := r.modules[module]
	if !ok {
		return nil, false, false
	}
	sym, found = syms[name]
	return sym, true, found
}

// Modules returns the registered module paths, sorted.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mods := make([]string, 0, len(r.modules))
	for m := range r.modules {
		mods = append(mods, m)
	}
	slices.Sort(mods)
	return mods
}

// Symbols returns the names registered in module, sorted.
func (r *Registry) Symbols(module string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules[module]))
	for n := range r.modules[module] {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Entries lists every registered symbol sorted by dotted name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entries []Entry
	for module, syms := range r.modules {
		for name, sym := range syms {
			e := Entry{Name: module + "." + name}
			if c, ok := asClass(sym); ok {
				e.IsClass = true
				e.Doc = c.Doc
			}
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return entries
}

func asClass(sym any) (Class, bool) {
	switch c := sym.(type) {
	case Class:
		return c, c.New != nil
	case *Class:
		if c == nil {
			return Class{}, false
		}
		return *c, c.New != nil
	default:
		return Class{}, false
	}
}

// splitDotted validates a dotted name and splits it at the last dot.
func splitDotted(dotted string) (module, name string, err error) {
	invalid := func(why string) error {
		return &ClassResolutionError{Name: dotted, Base: "any", Reason: ReasonInvalidName, Detail: why}
	}
	if strings.TrimSpace(dotted) == "" {
		return "", "", invalid("empty name")
	}
	if strings.ContainsAny(dotted, " \t\r\n/\\") {
		return "", "", invalid("names cannot contain whitespace or path separators")
	}
	idx := strings.LastIndexByte(dotted, '.')
	if idx < 0 {
		return "", "", invalid("expected module.Name")
	}
	if slices.Contains(strings.Split(dotted, "."), "") {
		return "", "", invalid("empty segment")
	}
	return dotted[:idx], dotted[idx+1:], nil
}

// Dotted names of the built-in symbols.
const (
	DefaultSystemClass = "apidoc.system.System"
	PublicSystemClass  = "apidoc.system.PublicSystem"
	DefaultWriterClass = "apidoc.writer.TemplateWriter"
	DefaultPrivacyName = "apidoc.system.DefaultPrivacy"
)

var defaultRegistry = NewBuiltinRegistry()

// NewBuiltinRegistry returns a registry holding only the built-in symbols.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(DefaultSystemClass, Class{
		Doc: "Default system: underscore names are private, privacy rules apply.",
		New: func(env *Env) (any, error) { return NewDefaultSystem(env.Options), nil },
	})
	r.MustRegister(PublicSystemClass, Class{
		Doc: "Like the default system, but private objects are hidden.",
		New: func(env *Env) (any, error) { return NewPublicSystem(env.Options), nil },
	})
	r.MustRegister(DefaultWriterClass, Class{
		Doc: "Renders the site through the resolved HTML templates.",
		New: func(env *Env) (any, error) { return NewTemplateWriter(env) },
	})
	// A plain value, registered so that loading it reports not-a-class.
	r.MustRegister(DefaultPrivacyName, PrivacyPublic)
	return r
}

// DefaultRegistry returns the process-wide registry used by the CLI.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a symbol to the process-wide registry. It is meant to be
// called from init functions and panics on an invalid or duplicate name.
func Register(dotted string, sym any) {
	defaultRegistry.MustRegister(dotted, sym)
}
