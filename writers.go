package swmming

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// inpWriter accumulates the first write error so section loops stay flat.
type inpWriter struct {
	w   io.Writer
	err error
}

func (iw *inpWriter) print(s string) {
	if iw.err != nil {
		return
	}
	_, iw.err = io.WriteString(iw.w, s)
}

func (iw *inpWriter) printf(format string, a ...interface{}) {
	if iw.err != nil {
		return
	}
	_, iw.err = fmt.Fprintf(iw.w, format, a...)
}

// trimFloat renders v in its shortest plain-decimal form (0 -> "0",
// 2.5 -> "2.5").
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pyfloat always keeps a decimal point (0 -> "0.0"), matching the
// elevation-offset cell of the HEC-2 transect lines.
func pyfloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// wrapText greedily packs words into lines no wider than w runes.
func wrapText(s string, w int) []string {
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= w:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// SaveInp assembles the project document and writes it to fp.
func (p *Project) SaveInp(fp string) error {
	var b strings.Builder
	if err := p.WriteInp(&b); err != nil {
		return fmt.Errorf("swmming: SaveInp: %v", err)
	}
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("swmming: SaveInp %s: %v", fp, err)
	}
	defer tw.Close()
	for _, ln := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		tw.WriteLine(ln)
	}
	return nil
}
