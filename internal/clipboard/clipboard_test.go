package clipboard

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func stubLookPath(t *testing.T, installed ...string) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) {
		if slices.Contains(installed, name) {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestFind(t *testing.T) {
	cases := []struct {
		name      string
		goos      string
		installed []string
		want      string
		wantErr   error
	}{
		{"darwin", "darwin", []string{"pbcopy"}, "pbcopy", nil},
		{"windows", "windows", []string{"clip"}, "clip", nil},
		{"wayland first", "linux", []string{"xclip", "wl-copy"}, "wl-copy", nil},
		{"xclip fallback", "linux", []string{"xsel", "xclip"}, "xclip", nil},
		{"other unix uses linux list", "freebsd", []string{"xsel"}, "xsel", nil},
		{"nothing installed", "linux", nil, "", ErrUnavailable},
		{"wrong platform helper", "darwin", []string{"xclip"}, "", ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubLookPath(t, tc.installed...)
			h, err := find(tc.goos)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("find(%q) error = %v, want %v", tc.goos, err, tc.wantErr)
			}
			if h.name != tc.want {
				t.Errorf("find(%q) = %q, want %q", tc.goos, h.name, tc.want)
			}
		})
	}
}

func TestXclipUsesClipboardSelection(t *testing.T) {
	stubLookPath(t, "xclip")
	h, err := find("linux")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !slices.Equal(h.args, []string{"-selection", "clipboard"}) {
		t.Errorf("xclip args = %q", h.args)
	}
}
