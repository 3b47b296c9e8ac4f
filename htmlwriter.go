package apidoc

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-apidoc/internal/assets"
	"github.com/alnah/go-apidoc/internal/docstring"
	"github.com/alnah/go-apidoc/internal/fileutil"
)

// DefaultOutputDir is used when no output directory is configured.
const DefaultOutputDir = "apidocs"

// Template names the writer renders. Fragments are injected verbatim.
const (
	indexTemplate     = "index.html"
	pageTemplate      = "page.html"
	nameIndexTemplate = "nameIndex.html"
	headerFragment    = "header.html"
	subheaderFragment = "subheader.html"
	footerFragment    = "footer.html"
)

// TemplateWriter renders the site through the templates of an
// assets.Lookup. Templates are parsed once at construction, so a broken
// override fails before anything is written.
type TemplateWriter struct {
	outputDir string
	project   string
	lookup    *assets.Lookup
	system    System
	logger    *slog.Logger
	workers   int
	docs      docstring.Renderer
	now       func() time.Time

	index, page, nameIndex    *template.Template
	header, subheader, footer template.HTML

	rendered sync.Map // *Object -> renderedDoc
}

type renderedDoc struct {
	html    template.HTML
	summary template.HTML
}

// NewTemplateWriter builds a TemplateWriter from env. Missing pieces get
// defaults: the built-in lookup, the default system, DefaultOutputDir and
// one worker per CPU.
func NewTemplateWriter(env *Env) (*TemplateWriter, error) {
	if env == nil {
		env = &Env{Options: DefaultOptions()}
	}

	lookup := env.Lookup
	if lookup == nil {
		var err error
		if lookup, err = assets.DefaultLookup(); err != nil {
			return nil, err
		}
	}
	sys := env.System
	if sys == nil {
		sys = NewDefaultSystem(env.Options)
	}
	docs, err := docstring.New(env.Options.DocFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	w := &TemplateWriter{
		outputDir: cmp.Or(env.OutputDir, DefaultOutputDir),
		project:   env.ProjectName,
		lookup:    lookup,
		system:    sys,
		logger:    env.logger(),
		workers:   env.Workers,
		docs:      docs,
		now:       time.Now,
	}
	if w.workers <= 0 {
		w.workers = runtime.GOMAXPROCS(0)
	}

	if w.index, err = w.parse(indexTemplate); err != nil {
		return nil, err
	}
	if w.page, err = w.parse(pageTemplate); err != nil {
		return nil, err
	}
	if w.nameIndex, err = w.parse(nameIndexTemplate); err != nil {
		return nil, err
	}
	if w.header, err = w.fragment(headerFragment); err != nil {
		return nil, err
	}
	if w.subheader, err = w.fragment(subheaderFragment); err != nil {
		return nil, err
	}
	if w.footer, err = w.fragment(footerFragment); err != nil {
		return nil, err
	}
	return w, nil
}

// OutputDir returns the directory the site is written to.
func (w *TemplateWriter) OutputDir() string {
	return w.outputDir
}

func (w *TemplateWriter) parse(name string) (*template.Template, error) {
	t, err := w.lookup.Template(name)
	if err != nil {
		return nil, err
	}
	parsed, err := template.New(name).Option("missingkey=error").Parse(t.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrTemplateParse, name, t.Location, err)
	}
	return parsed, nil
}

// fragment returns a header-like template as trusted HTML. Whitespace-only
// fragments render to nothing.
func (w *TemplateWriter) fragment(name string) (template.HTML, error) {
	t, err := w.lookup.Template(name)
	if err != nil {
		return "", err
	}
	if t.IsEmpty() {
		return "", nil
	}
	return template.HTML(t.Text), nil // #nosec G203 -- fragments are operator-supplied templates
}

// PrepOutputDirectory implements Writer. It creates the output directory
// and writes every static template (CSS and JS) into it.
func (w *TemplateWriter) PrepOutputDirectory() error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil { // #nosec G301 -- generated site is world-readable
		return fmt.Errorf("%w: %s: %w", ErrOutputDir, w.outputDir, err)
	}
	for _, t := range w.lookup.Static() {
		if err := fileutil.WriteFileAtomic(w.outputDir, t.Name, []byte(t.Text)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrOutputDir, t.Name, err)
		}
		w.logger.Debug("wrote static file", "file", t.Name, "origin", t.Origin)
	}
	return nil
}

// WriteSummaryPages implements Writer: index.html lists the root objects
// and nameIndex.html every visible object by name.
func (w *TemplateWriter) WriteSummaryPages(ctx context.Context, p *Project) error {
	data := w.baseData(cmp.Or(w.project, p.Name))

	for _, root := range p.Roots {
		if !IsVisible(w.system, root) {
			continue
		}
		e, err := w.entry(ctx, root)
		if err != nil {
			return err
		}
		data.Roots = append(data.Roots, e)
	}
	slices.SortFunc(data.Roots, func(a, b entryData) int { return strings.Compare(a.FullName, b.FullName) })
	if err := w.render(w.index, indexTemplate, data); err != nil {
		return err
	}

	data.Roots = nil
	for _, o := range p.AllObjects() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !IsVisible(w.system, o) {
			continue
		}
		e, err := w.entry(ctx, o)
		if err != nil {
			return err
		}
		data.Names = append(data.Names, e)
	}
	slices.SortFunc(data.Names, func(a, b entryData) int {
		if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.FullName, b.FullName)
	})
	return w.render(w.nameIndex, nameIndexTemplate, data)
}

// WriteIndividualFiles implements Writer. Pages are rendered concurrently,
// bounded by the worker count; the first failure cancels the rest.
func (w *TemplateWriter) WriteIndividualFiles(ctx context.Context, obs []*Object) error {
	var pages []*Object
	for _, o := range obs {
		if !o.Kind.HasOwnPage() || !IsVisible(w.system, o) {
			continue
		}
		if o.Parent == nil && reservedRootNames[strings.ToLower(o.Name)] {
			return fmt.Errorf("%w: root object name %q is reserved for a summary page", ErrInvalidModel, o.Name)
		}
		pages = append(pages, o)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)
	for _, o := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.writePage(ctx, o)
		})
	}
	return g.Wait()
}

func (w *TemplateWriter) writePage(ctx context.Context, o *Object) error {
	root := o
	for root.Parent != nil {
		root = root.Parent
	}
	data := w.baseData(cmp.Or(w.project, root.Name))

	doc, err := w.renderDoc(ctx, o)
	if err != nil {
		return err
	}
	od := &objectData{
		Name:     o.Name,
		FullName: o.FullName(),
		Kind:     o.Kind.String(),
		Doc:      doc.html,
	}
	for _, a := range o.Ancestors() {
		od.Breadcrumbs = append(od.Breadcrumbs, crumb{Name: a.Name, URL: a.URL()})
	}
	for _, m := range SortedMembers(w.system, o) {
		md, err := w.member(ctx, m)
		if err != nil {
			return err
		}
		od.Members = append(od.Members, md)
	}
	data.Object = od

	return w.render(w.page, o.FullName()+".html", data)
}

func (w *TemplateWriter) render(t *template.Template, file string, data *pageData) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateRender, file, err)
	}
	if err := fileutil.WriteFileAtomic(w.outputDir, file, buf.Bytes()); err != nil {
		if errors.Is(err, fileutil.ErrFileNamePathTraversal) {
			return fmt.Errorf("%w: %w", ErrInvalidModel, err)
		}
		return fmt.Errorf("writing %s: %w", file, err)
	}
	w.logger.Debug("wrote page", "file", file)
	return nil
}

// renderDoc renders o's docstring once and caches the result.
func (w *TemplateWriter) renderDoc(ctx context.Context, o *Object) (renderedDoc, error) {
	if v, ok := w.rendered.Load(o); ok {
		return v.(renderedDoc), nil
	}
	html, err := w.docs.Render(ctx, docstring.Clean(o.Docstring))
	if err != nil {
		return renderedDoc{}, fmt.Errorf("%w: %s: %w", ErrDocstring, o.FullName(), err)
	}
	summary, err := docstring.Summary(html)
	if err != nil {
		return renderedDoc{}, fmt.Errorf("%w: %s: %w", ErrDocstring, o.FullName(), err)
	}
	// Rendered docstrings are produced by goldmark without raw HTML, or escaped.
	doc := renderedDoc{html: template.HTML(html), summary: template.HTML(summary)} // #nosec G203
	w.rendered.Store(o, doc)
	return doc, nil
}

func (w *TemplateWriter) baseData(project string) *pageData {
	return &pageData{
		Project:   project,
		Header:    w.header,
		Subheader: w.subheader,
		Footer:    w.footer,
		Version:   Version,
		Generated: w.now().UTC().Format(time.RFC3339),
	}
}

func (w *TemplateWriter) entry(ctx context.Context, o *Object) (entryData, error) {
	doc, err := w.renderDoc(ctx, o)
	if err != nil {
		return entryData{}, err
	}
	return entryData{
		Name:     o.Name,
		FullName: o.FullName(),
		Kind:     o.Kind.String(),
		URL:      o.URL(),
		Private:  IsPrivate(w.system, o),
		Summary:  doc.summary,
	}, nil
}

func (w *TemplateWriter) member(ctx context.Context, m *Object) (memberData, error) {
	doc, err := w.renderDoc(ctx, m)
	if err != nil {
		return memberData{}, err
	}
	return memberData{
		Anchor:     m.Name,
		Name:       m.Name,
		Kind:       m.Kind.String(),
		URL:        m.URL(),
		Private:    IsPrivate(w.system, m),
		OwnPage:    m.Kind.HasOwnPage(),
		LineNumber: m.LineNumber,
		Summary:    doc.summary,
		Doc:        doc.html,
	}, nil
}

// pageData is the value templates are executed with. Field names are part
// of the template contract for overrides.
type pageData struct {
	Project   string
	Header    template.HTML
	Subheader template.HTML
	Footer    template.HTML
	Version   string
	Generated string
	Roots     []entryData
	Names     []entryData
	Object    *objectData
}

type entryData struct {
	Name     string
	FullName string
	Kind     string
	URL      string
	Private  bool
	Summary  template.HTML
}

type objectData struct {
	Name        string
	FullName    string
	Kind        string
	Doc         template.HTML
	Breadcrumbs []crumb
	Members     []memberData
}

type crumb struct {
	Name string
	URL  string
}

type memberData struct {
	Anchor     string
	Name       string
	Kind       string
	URL        string
	Private    bool
	OwnPage    bool
	LineNumber int
	Summary    template.HTML
	Doc        template.HTML
}
