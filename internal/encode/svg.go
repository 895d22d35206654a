package encode

import (
	"fmt"
	"strings"
)

// renderSVG emits an SVG document from a QR module matrix. Each row of
// dark modules is merged into horizontal run rectangles to keep the
// output compact; the matrix already includes the quiet zone border.
func renderSVG(modules [][]bool, viewport int) []byte {
	n := len(modules)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		viewport, viewport, n, n)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
	b.WriteString(`<g fill="#000000">`)

	for y, row := range modules {
		x := 0
		for x < len(row) {
			if !row[x] {
				x++
				continue
			}
			run := 0
			for x+run < len(row) && row[x+run] {
				run++
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="1"/>`, x, y, run)
			x += run
		}
	}

	b.WriteString(`</g></svg>`)
	return []byte(b.String())
}
