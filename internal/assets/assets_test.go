package assets

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("no override directory", func(t *testing.T) {
		t.Parallel()

		got, err := Resolve("extra.css", "")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got.Origin != OriginBuiltin {
			t.Errorf("Resolve() origin = %q, want %q", got.Origin, OriginBuiltin)
		}
	})

	t.Run("override directory with the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"extra.css": "h1 { margin: 0; }"})

		got, err := Resolve("extra.css", dir)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got.Origin != OriginOverride || string(got.Content) != "h1 { margin: 0; }" {
			t.Errorf("Resolve() = %+v, want override content", got)
		}
	})
}
