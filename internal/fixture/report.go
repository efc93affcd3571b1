package fixture

import (
	"fmt"
	"io"
	"path/filepath"
)

// WriteText renders the fixture suite outcome. Regressions are marked
// explicitly so they cannot be mistaken for ordinary document failures.
func (s *Suite) WriteText(w io.Writer) {
	for _, r := range s.Results {
		name := filepath.Base(r.Path)
		if r.Match {
			fmt.Fprintf(w, "✓ %s\n", name)
			continue
		}
		fmt.Fprintf(w, "✗ %s (checker regression)\n", name)
		if r.Detail != "" {
			fmt.Fprintf(w, "  %s\n", r.Detail)
		}
	}

	fmt.Fprintf(w, "\n%d/%d fixtures reproduced\n", s.Matched, s.Total)
}
