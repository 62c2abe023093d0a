package sink

import (
	"context"

	"github.com/matzehuels/chartlabel/pkg/render"
)

// RenderPDF converts a finished SVG canvas to PDF.
// Requires rsvg-convert; see [render.ToPDF].
func RenderPDF(ctx context.Context, s *SVG) ([]byte, error) {
	return render.ToPDF(ctx, s.Bytes())
}
