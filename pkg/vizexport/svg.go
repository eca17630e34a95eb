package vizexport

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/quietstack/cadschedule/pkg/record"
)

// SVGOptions configures the plan-view export.
type SVGOptions struct {
	Width      int
	Height     int
	Margin     int
	ShowLabels bool
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 1200, Height: 900, Margin: 40, ShowLabels: true}
}

// ExportSVG draws each activity's 2D bounding box (MinOfMinX/Y ..
// MaxOfMaxX/Y), scaled to fit the canvas and colored by CWA, as a
// top-down plan view. Activities missing a bounding box are skipped.
func ExportSVG(records []record.Record, opts SVGOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	type box struct {
		name               string
		cwa                string
		xMin, xMax, yMin, yMax float64
	}
	var boxes []box
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	first := true
	for _, rec := range records {
		x1, ok1 := rec.GetFloat("MinOfMinX")
		x2, ok2 := rec.GetFloat("MaxOfMaxX")
		y1, ok3 := rec.GetFloat("MinOfMinY")
		y2, ok4 := rec.GetFloat("MaxOfMaxY")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		b := box{
			name: rec.GetString("Element Name"),
			cwa:  rec.GetString("CWA"),
			xMin: x1, xMax: x2, yMin: y1, yMax: y2,
		}
		boxes = append(boxes, b)
		if first {
			minX, maxX, minY, maxY = x1, x2, y1, y2
			first = false
			continue
		}
		minX = minF(minX, x1)
		maxX = maxF(maxX, x2)
		minY = minF(minY, y1)
		maxY = maxF(maxY, y2)
	}
	if len(boxes) == 0 {
		return nil, fmt.Errorf("no activities with a bounding box to render")
	}

	spanX := maxF(maxX-minX, 1)
	spanY := maxF(maxY-minY, 1)
	scaleX := float64(opts.Width-2*opts.Margin) / spanX
	scaleY := float64(opts.Height-2*opts.Margin) / spanY
	scale := minF(scaleX, scaleY)

	project := func(x, y float64) (int, int) {
		px := opts.Margin + int((x-minX)*scale)
		py := opts.Height - opts.Margin - int((y-minY)*scale)
		return px, py
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	// Stable draw order: same CWA clusters render contiguously.
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].cwa < boxes[j].cwa })

	for _, b := range boxes {
		x0, y0 := project(b.xMin, b.yMax)
		x1, y1 := project(b.xMax, b.yMin)
		w := x1 - x0
		h := y1 - y0
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		style := fmt.Sprintf("fill:%s;stroke:#222;stroke-width:1;fill-opacity:0.6", cwaColor(b.cwa))
		canvas.Rect(x0, y0, w, h, style)
		if opts.ShowLabels && b.name != "" {
			canvas.Text(x0+2, y0+12, b.name, "font-size:10px;fill:#000")
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// cwaColor derives a stable HSL-ish color from a CWA name so every
// activity in the same Construction Work Area renders the same color
// across exports, without maintaining a palette table.
func cwaColor(cwa string) string {
	if cwa == "" {
		return "#999999"
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(cwa))
	hue := h.Sum32() % 360
	return fmt.Sprintf("hsl(%d,65%%,55%%)", hue)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
