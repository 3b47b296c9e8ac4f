package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestReadVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		asset   string
		content string
		want    int
		wantErr error
	}{
		{
			name:    "html meta tag",
			asset:   "page.html",
			content: `<head><meta name="apidoc-template-version" content="3" /></head>`,
			want:    3,
		},
		{
			name:    "html attributes in any order",
			asset:   "page.html",
			content: `<meta content='7' name='apidoc-template-version'>`,
			want:    7,
		},
		{
			name:    "html without marker",
			asset:   "header.html",
			content: `<div>hello</div>`,
			want:    NoVersion,
		},
		{
			name:    "html marker without content",
			asset:   "header.html",
			content: `<meta name="apidoc-template-version" />`,
			want:    NoVersion,
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "html marker not an integer",
			asset:   "header.html",
			content: `<meta name="apidoc-template-version" content="1.2" />`,
			want:    NoVersion,
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "other meta tags are ignored",
			asset:   "page.html",
			content: `<meta name="viewport" content="9" /><meta name="apidoc-template-version" content="2" />`,
			want:    2,
		},
		{
			name:    "data-name attribute is not the marker",
			asset:   "page.html",
			content: `<meta data-name="apidoc-template-version" content="4" />`,
			want:    NoVersion,
		},
		{
			name:    "data-content attribute is not the value",
			asset:   "page.html",
			content: `<meta name="apidoc-template-version" data-content="4" content="6" />`,
			want:    6,
		},
		{
			name:    "metadata element is not a meta tag",
			asset:   "page.html",
			content: `<metadata name="apidoc-template-version" content="4" />`,
			want:    NoVersion,
		},
		{
			name:    "css comment",
			asset:   "extra.css",
			content: "/* apidoc-template-version: 5 */\nbody {}",
			want:    5,
		},
		{
			name:    "js comment without colon",
			asset:   "apidocs.js",
			content: "/* apidoc-template-version 12 */",
			want:    12,
		},
		{
			name:    "css without marker",
			asset:   "extra.css",
			content: "body { color: red; }",
			want:    NoVersion,
		},
		{
			name:    "css negative version",
			asset:   "extra.css",
			content: "/* apidoc-template-version: -4 */",
			want:    NoVersion,
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "html comment syntax is not a marker in css",
			asset:   "extra.css",
			content: `<meta name="apidoc-template-version" content="3" />`,
			want:    NoVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadVersion(tt.asset, tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadVersion() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("ReadVersion() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadVersion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStripVersion(t *testing.T) {
	t.Parallel()

	t.Run("removes html meta line", func(t *testing.T) {
		t.Parallel()

		in := "<head>\n  <meta charset=\"utf-8\" />\n  <meta name=\"apidoc-template-version\" content=\"2\" />\n  <title>x</title>\n</head>"
		want := "<head>\n  <meta charset=\"utf-8\" />\n  <title>x</title>\n</head>"
		if got := StripVersion("index.html", in); got != want {
			t.Errorf("StripVersion() = %q, want %q", got, want)
		}
	})

	t.Run("fragment with only a marker becomes empty", func(t *testing.T) {
		t.Parallel()

		got := StripVersion("header.html", "<meta name=\"apidoc-template-version\" content=\"1\" />\n")
		if strings.TrimSpace(got) != "" {
			t.Errorf("StripVersion() = %q, want whitespace only", got)
		}
	})

	t.Run("static content is unchanged", func(t *testing.T) {
		t.Parallel()

		in := "/* apidoc-template-version: 1 */\nbody {}"
		if got := StripVersion("extra.css", in); got != in {
			t.Errorf("StripVersion() = %q, want unchanged", got)
		}
	})
}

func TestNewTemplate(t *testing.T) {
	t.Parallel()

	t.Run("html template", func(t *testing.T) {
		t.Parallel()

		tmpl, err := NewTemplate(Resolved{
			Name:    "header.html",
			Content: []byte("<meta name=\"apidoc-template-version\" content=\"1\" />\n"),
			Origin:  OriginBuiltin,
		})
		if err != nil {
			t.Fatalf("NewTemplate() error = %v", err)
		}
		if tmpl.Kind != KindHTML || tmpl.Version != 1 {
			t.Errorf("NewTemplate() = %+v, want html version 1", tmpl)
		}
		if !tmpl.IsEmpty() {
			t.Error("marker-only fragment should be empty")
		}
	})

	t.Run("static template", func(t *testing.T) {
		t.Parallel()

		tmpl, err := NewTemplate(Resolved{Name: "apidocs.js", Content: []byte("/* apidoc-template-version: 1 */ var x;")})
		if err != nil {
			t.Fatalf("NewTemplate() error = %v", err)
		}
		if !tmpl.IsStatic() || tmpl.IsEmpty() {
			t.Errorf("NewTemplate() = %+v, want non-empty static", tmpl)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := NewTemplate(Resolved{Name: "logo.png"})
		if !errors.Is(err, ErrUnsupportedTemplate) {
			t.Errorf("NewTemplate() error = %v, want ErrUnsupportedTemplate", err)
		}
	})

	t.Run("malformed version still yields a template", func(t *testing.T) {
		t.Parallel()

		tmpl, err := NewTemplate(Resolved{Name: "extra.css", Content: []byte("/* apidoc-template-version: x */")})
		if !errors.Is(err, ErrMalformedVersion) {
			t.Fatalf("NewTemplate() error = %v, want ErrMalformedVersion", err)
		}
		if tmpl == nil || tmpl.Version != NoVersion {
			t.Errorf("NewTemplate() = %+v, want template with NoVersion", tmpl)
		}
	})
}
