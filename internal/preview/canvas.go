package preview

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas units are millimetres; one layout pixel maps to one unit and is
// rasterized at one dot per unit.
const ptPerUnit = 72 / 25.4

// FontSources names the preview fonts, either as raw font data or as file
// paths read on first use. Data wins over a path. Unset entries use the Go
// fonts.
type FontSources struct {
	Regular     []byte
	Bold        []byte
	RegularPath string
	BoldPath    string
}

// CanvasRenderer measures and draws layout trees with tdewolff/canvas.
// It is safe for concurrent use.
type CanvasRenderer struct {
	fonts FontSources

	fontMu      sync.Mutex
	family      *canvas.FontFamily
	fontErr     error
	fallback    bool
	fallbackErr error
}

// NewCanvasRenderer returns a renderer using the given fonts.
func NewCanvasRenderer(fonts FontSources) *CanvasRenderer {
	return &CanvasRenderer{fonts: fonts}
}

// UsesFallbackFont reports whether the configured fonts could not be read
// or parsed and the Go fonts were used instead, along with the reason.
// It loads the fonts if necessary.
func (r *CanvasRenderer) UsesFallbackFont() (bool, error) {
	_, _ = r.fontFamily()
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	return r.fallback, r.fallbackErr
}

func (r *CanvasRenderer) fontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil || r.fontErr != nil {
		return r.family, r.fontErr
	}

	regular, errRegular := fontData(r.fonts.Regular, r.fonts.RegularPath, goregular.TTF)
	bold, errBold := fontData(r.fonts.Bold, r.fonts.BoldPath, gobold.TTF)
	if err := errors.Join(errRegular, errBold); err != nil {
		r.fallback, r.fallbackErr = true, err
		regular, bold = goregular.TTF, gobold.TTF
	}

	family, err := loadFamily("preview", regular, bold)
	if err != nil && !r.fallback {
		r.fallback, r.fallbackErr = true, err
		family, err = loadFamily("preview-fallback", goregular.TTF, gobold.TTF)
	}
	r.family, r.fontErr = family, err
	return family, err
}

// fontData returns data, the contents of path, or def, in that order.
func fontData(data []byte, path string, def []byte) ([]byte, error) {
	if data != nil {
		return data, nil
	}
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("failed to read font: %w", err)
	}
	return b, nil
}

func loadFamily(name string, regular, bold []byte) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(regular, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	if err := family.LoadFont(bold, 0, canvas.FontBold); err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return family, nil
}

func (r *CanvasRenderer) face(style TextStyle) (*canvas.FontFace, error) {
	family, err := r.fontFamily()
	if err != nil {
		return nil, err
	}
	fontStyle := canvas.FontRegular
	if style.Bold {
		fontStyle = canvas.FontBold
	}
	return family.Face(style.Size*ptPerUnit, parseColor(style.Color), fontStyle, canvas.FontNormal), nil
}

// TextWidth implements Measurer. Unloadable fonts measure as zero width;
// the error surfaces again when drawing.
func (r *CanvasRenderer) TextWidth(s string, style TextStyle) float64 {
	face, err := r.face(style)
	if err != nil {
		return 0
	}
	return face.TextWidth(s)
}

// Draw paints a laid-out tree onto a new canvas the size of the root frame.
func (r *CanvasRenderer) Draw(root *Node) (*canvas.Canvas, error) {
	c := canvas.New(root.Frame.W, root.Frame.H)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	var drawErr error
	root.Walk(func(n *Node) {
		if drawErr != nil {
			return
		}
		drawBox(ctx, n)
		if n.IsText() {
			drawErr = r.drawText(ctx, n)
		}
	})
	if drawErr != nil {
		return nil, drawErr
	}
	return c, nil
}

func drawBox(ctx *canvas.Context, n *Node) {
	f := n.Frame
	fullBorder := n.Border.Width > 0 && !n.Border.TopOnly
	if n.Background != "" || fullBorder {
		fill := color.RGBA{}
		if n.Background != "" {
			fill = parseColor(n.Background)
		}
		ctx.SetFillColor(fill)
		if fullBorder {
			ctx.SetStrokeColor(parseColor(n.Border.Color))
			ctx.SetStrokeWidth(n.Border.Width)
		} else {
			ctx.SetStrokeColor(color.RGBA{})
			ctx.SetStrokeWidth(0)
		}
		shape := canvas.Rectangle(f.W, f.H)
		if n.Radius > 0 {
			shape = canvas.RoundedRectangle(f.W, f.H, n.Radius)
		}
		ctx.DrawPath(f.X, f.Y, shape)
	}

	if n.Border.Width > 0 && n.Border.TopOnly {
		ctx.SetFillColor(color.RGBA{})
		ctx.SetStrokeColor(parseColor(n.Border.Color))
		ctx.SetStrokeWidth(n.Border.Width)
		rule := &canvas.Path{}
		rule.MoveTo(0, 0)
		rule.LineTo(f.W, 0)
		ctx.DrawPath(f.X, f.Y, rule)
	}
}

func (r *CanvasRenderer) drawText(ctx *canvas.Context, n *Node) error {
	face, err := r.face(n.Style)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	pitch := n.Style.LinePitch()
	// centre the glyph box within each line box
	lead := (pitch - (metrics.Ascent + metrics.Descent)) / 2

	x := n.Frame.X + n.Padding.Left
	top := n.Frame.Y + n.Padding.Top
	for _, line := range n.Lines {
		baseline := top + lead + metrics.Ascent
		ctx.DrawText(x, baseline, canvas.NewTextLine(face, line.Text, canvas.Left))
		top += pitch
	}
	return nil
}

// EncodePNG draws an already laid-out root and writes a PNG exactly Width
// pixels wide.
func (r *CanvasRenderer) EncodePNG(w io.Writer, root *Node) error {
	c, err := r.Draw(root)
	if err != nil {
		return err
	}
	img := rasterizer.Draw(c, canvas.DPMM(Width/c.W), canvas.DefaultColorSpace)
	return png.Encode(w, img)
}

// EncodeSVG draws root and writes it as SVG.
func (r *CanvasRenderer) EncodeSVG(w io.Writer, root *Node) error {
	c, err := r.Draw(root)
	if err != nil {
		return err
	}
	out := svg.New(w, c.W, c.H, nil)
	c.RenderTo(out)
	return out.Close()
}

func parseColor(hex string) color.RGBA {
	if hex == "" {
		return canvas.Black
	}
	return canvas.Hex(hex)
}
