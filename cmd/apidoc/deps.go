package main

import (
	"io"
	"os"
	"time"

	apidoc "github.com/alnah/go-apidoc"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Registry *apidoc.Registry // where --system-class and --html-class are looked up

	// ConfigName is looked up when neither --config nor APIDOC_CONFIG is set.
	ConfigName string
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Registry: apidoc.DefaultRegistry(),

		ConfigName: "apidoc",
	}
}
