package apidoc

import (
	"errors"
	"testing"
)

func TestParseMemberOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    MemberOrder
		wantErr bool
	}{
		{in: "", want: OrderAlphabetical},
		{in: "alphabetical", want: OrderAlphabetical},
		{in: "Source", want: OrderSource},
		{in: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMemberOrder(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMemberOrder) || !errors.Is(err, ErrConfiguration) {
					t.Errorf("ParseMemberOrder(%q) error = %v, want ErrInvalidMemberOrder", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseMemberOrder(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{name: "defaults", opts: DefaultOptions()},
		{name: "zero value", opts: Options{}},
		{name: "plaintext", opts: Options{DocFormat: DocFormatPlaintext}},
		{name: "bad docformat", opts: Options{DocFormat: "epytext"}, wantErr: ErrInvalidDocFormat},
		{name: "bad class order", opts: Options{ClassMemberOrder: "size"}, wantErr: ErrInvalidMemberOrder},
		{name: "bad module order", opts: Options{ModuleMemberOrder: "size"}, wantErr: ErrInvalidMemberOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
