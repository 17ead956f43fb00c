package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

type stats struct {
	scanned   int
	processed int
	skipped   int
	errored   int
	bytesIn   int64
	bytesOut  int64
}

func (s stats) print(w io.Writer, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Inputs:    %d\n", s.scanned)
	fmt.Fprintf(w, "  Processed: %d\n", s.processed)
	fmt.Fprintf(w, "  Skipped:   %d\n", s.skipped)
	fmt.Fprintf(w, "  Errors:    %d\n", s.errored)
	//nolint:gosec // sizes are sums of string lengths
	fmt.Fprintf(w, "  In:        %s\n", humanize.IBytes(uint64(s.bytesIn)))
	//nolint:gosec // sizes are sums of string lengths
	fmt.Fprintf(w, "  Out:       %s\n", humanize.IBytes(uint64(s.bytesOut)))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
