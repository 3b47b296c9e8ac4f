package apidoc

import (
	"context"
	"fmt"
)

// Version is the generator version shown in page footers. It is set at
// build time via ldflags.
var Version = "dev"

// Writer emits the documentation site. Custom writers are registered under
// a dotted name and selected with --html-class.
type Writer interface {
	// PrepOutputDirectory creates the output directory and copies static files.
	PrepOutputDirectory() error
	// WriteSummaryPages writes pages that describe the project as a whole.
	WriteSummaryPages(ctx context.Context, p *Project) error
	// WriteIndividualFiles writes one page per object that has its own page.
	WriteIndividualFiles(ctx context.Context, obs []*Object) error
}

// Build runs w over p: output directory, summary pages, then object pages.
func Build(ctx context.Context, w Writer, p *Project) error {
	if err := w.PrepOutputDirectory(); err != nil {
		return err
	}
	if err := w.WriteSummaryPages(ctx, p); err != nil {
		return fmt.Errorf("writing summary pages: %w", err)
	}
	if err := w.WriteIndividualFiles(ctx, p.AllObjects()); err != nil {
		return fmt.Errorf("writing object pages: %w", err)
	}
	return nil
}
