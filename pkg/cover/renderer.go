package cover

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	// MIMEType is the content type of every rendered document.
	MIMEType = "application/pdf"
	// Filename is the suggested download name.
	Filename = "submittal-cover.pdf"

	// TemplateName is the template file looked up in the template FS.
	TemplateName = "cover_template.png"

	maxLogoPixels = 40_000_000
)

var (
	// ErrInvalidImage is returned when the logo cannot be decoded.
	ErrInvalidImage = errors.New("invalid logo image")
	// ErrMissingTemplate is returned when the background template cannot be loaded.
	ErrMissingTemplate = errors.New("cover template unavailable")
)

//go:embed assets/cover_template.png
var assets embed.FS

// epoch stamps every document so output does not depend on wall time.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Document is one rendered cover page.
type Document struct {
	Data     []byte
	MIMEType string
	Filename string
}

// Renderer draws cover pages. It holds configuration only and is safe for
// concurrent use.
type Renderer struct {
	templates    fs.FS
	templatePath string
	layout       Layout
	compress     bool
	timestamp    time.Time
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithTemplateFS reads the template from fsys at path.
func WithTemplateFS(fsys fs.FS, path string) Option {
	return func(r *Renderer) {
		r.templates = fsys
		r.templatePath = path
	}
}

// WithTemplateDir reads TemplateName from a directory on disk.
func WithTemplateDir(dir string) Option {
	return func(r *Renderer) {
		if dir == "" {
			return
		}
		r.templates = os.DirFS(dir)
		r.templatePath = TemplateName
	}
}

// WithLayout overrides the page layout.
func WithLayout(l Layout) Option {
	return func(r *Renderer) {
		r.layout = l
	}
}

// WithCompression toggles stream compression. Enabled by default.
func WithCompression(enabled bool) Option {
	return func(r *Renderer) {
		r.compress = enabled
	}
}

// WithTimestamp sets the creation and modification dates written to the document.
func WithTimestamp(t time.Time) Option {
	return func(r *Renderer) {
		r.timestamp = t
	}
}

// New creates a renderer using the embedded template.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		templates:    assets,
		templatePath: "assets/" + TemplateName,
		layout:       DefaultLayout(),
		compress:     true,
		timestamp:    epoch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the layout in use.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render produces the cover page. An empty name renders blank, an empty date
// omits the date line and a nil logo draws nothing in the corner. Any non-nil
// logo, empty included, must decode.
func (r *Renderer) Render(name, date string, logo []byte) (Document, error) {
	background, err := r.loadTemplate()
	if err != nil {
		return Document{}, err
	}

	var logoPNG []byte
	var logoW, logoH int
	if logo != nil {
		logoPNG, logoW, logoH, err = normalize(logo)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(r.compress)
	pdf.SetCreationDate(r.timestamp)
	pdf.SetModificationDate(r.timestamp)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("template", opt, bytes.NewReader(background))
	pdf.ImageOptions("template", 0, 0, r.layout.PageWidth, r.layout.PageHeight, false, opt, 0, "")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	measure := func(f Font, text string) float64 {
		pdf.SetFont(f.Family, f.Style, f.Size)
		return pdf.GetStringWidth(text)
	}

	plan := r.layout.Plan(tr(name), tr(date), logoW, logoH, measure)
	for _, line := range []*TextPlacement{plan.Name, plan.Date} {
		if line == nil {
			continue
		}
		pdf.SetFont(line.Font.Family, line.Font.Style, line.Font.Size)
		pdf.SetTextColor(line.Font.Color[0], line.Font.Color[1], line.Font.Color[2])
		pdf.Text(line.X, line.Y, line.Text)
	}

	if plan.Logo != nil {
		pdf.RegisterImageOptionsReader("logo", opt, bytes.NewReader(logoPNG))
		pdf.ImageOptions("logo", plan.Logo.X, plan.Logo.Y, plan.Logo.W, plan.Logo.H, false, opt, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("failed to write pdf: %w", err)
	}

	return Document{
		Data:     buf.Bytes(),
		MIMEType: MIMEType,
		Filename: Filename,
	}, nil
}

func (r *Renderer) loadTemplate() ([]byte, error) {
	if r.templates == nil {
		return nil, ErrMissingTemplate
	}
	raw, err := fs.ReadFile(r.templates, r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplate, err)
	}
	data, _, _, err := normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplate, err)
	}
	return data, nil
}

// normalize decodes any supported raster and re-encodes it as 8-bit PNG,
// the only variant fpdf embeds without surprises.
func normalize(raw []byte) ([]byte, int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxLogoPixels {
		return nil, 0, 0, fmt.Errorf("unsupported dimensions %dx%d", cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, 0, err
	}

	b := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, 0, 0, err
	}
	return buf.Bytes(), b.Dx(), b.Dy(), nil
}
