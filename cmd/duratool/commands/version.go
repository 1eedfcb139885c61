package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/duratypes/duratypes-go/pkg/version"
)

// RunVersion prints the library version and the Go runtime it was built with.
// When required is set, it also reports whether this build satisfies it: same
// compatibility line and not older.
func RunVersion(required string, w io.Writer) error {
	current := version.MustCurrent()
	fmt.Fprintf(w, "duratool %s (%s)\n", current, runtime.Version())

	if required == "" {
		return nil
	}

	want, err := version.Parse(required)
	if err != nil {
		return err
	}
	switch {
	case !current.Compatible(want):
		return fmt.Errorf("version %s is not compatible with required %s", current, want)
	case current.Less(want):
		return fmt.Errorf("version %s is older than required %s", current, want)
	}
	fmt.Fprintf(w, "satisfies %s\n", want)
	return nil
}
