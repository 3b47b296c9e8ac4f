package docstring

import "testing"

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "single line is trimmed",
			in:   "   Return the value.  ",
			want: "Return the value.",
		},
		{
			name: "common indentation is removed",
			in:   "Summary line.\n\n    Details here.\n      Nested.\n    ",
			want: "Summary line.\n\nDetails here.\n  Nested.",
		},
		{
			name: "first line indentation does not count",
			in:   "        Summary.\n    Body.",
			want: "Summary.\nBody.",
		},
		{
			name: "crlf is normalized",
			in:   "One.\r\n\r\n    Two.\r\n",
			want: "One.\n\nTwo.",
		},
		{
			name: "blank line runs are compressed",
			in:   "One.\n\n\n\n\nTwo.",
			want: "One.\n\nTwo.",
		},
		{
			name: "leading blank lines are dropped",
			in:   "\n\n    Body starts here.\n    More.",
			want: "Body starts here.\nMore.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
