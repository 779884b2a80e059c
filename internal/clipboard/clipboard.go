// Package clipboard copies text to the system clipboard through the
// platform's command-line helper.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is installed.
var ErrUnavailable = errors.New("no clipboard helper found")

type helper struct {
	name string
	args []string
}

// helpers lists candidates per GOOS in order of preference.
var helpers = map[string][]helper{
	"darwin":  {{name: "pbcopy"}},
	"windows": {{name: "clip"}},
	"linux": {
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	},
}

var lookPath = exec.LookPath

func find(goos string) (helper, error) {
	candidates, ok := helpers[goos]
	if !ok {
		// Other unixes usually run X.
		candidates = helpers["linux"]
	}
	for _, h := range candidates {
		if _, err := lookPath(h.name); err == nil {
			return h, nil
		}
	}
	return helper{}, ErrUnavailable
}

// Available reports whether Write can succeed on this system.
func Available() bool {
	_, err := find(runtime.GOOS)
	return err == nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	h, err := find(runtime.GOOS)
	if err != nil {
		return err
	}
	cmd := exec.Command(h.name, h.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
