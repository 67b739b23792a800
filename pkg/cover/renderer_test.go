package cover

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h)))
	return buf.Bytes()
}

func countImages(data []byte) int {
	return bytes.Count(data, []byte("/Subtype /Image"))
}

func TestRender_NameWithoutLogo(t *testing.T) {
	r := New(WithCompression(false))

	doc, err := r.Render("Acme Tower", "", nil)
	require.NoError(t, err)

	assert.Equal(t, MIMEType, doc.MIMEType)
	assert.Equal(t, Filename, doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF-")))
	assert.Contains(t, string(doc.Data), "(Acme Tower) Tj")
	assert.Equal(t, 1, countImages(doc.Data), "only the template is drawn")
}

func TestRender_DateLine(t *testing.T) {
	r := New(WithCompression(false))

	with, err := r.Render("Acme Tower", "03-14-2025", nil)
	require.NoError(t, err)
	assert.Contains(t, string(with.Data), "(03-14-2025) Tj")

	without, err := r.Render("Acme Tower", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(without.Data, []byte(") Tj")), "empty date omits the line")
}

func TestRender_BlankTextWithLogo(t *testing.T) {
	r := New(WithCompression(false))

	doc, err := r.Render("", "", pngBytes(t, 300, 150))
	require.NoError(t, err)
	assert.Equal(t, 2, countImages(doc.Data))
	assert.NotContains(t, string(doc.Data), " Tj")
}

func TestRender_LogoFormats(t *testing.T) {
	r := New()

	var jpg, gi bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpg, solid(40, 20), nil))
	require.NoError(t, gif.Encode(&gi, solid(20, 40), nil))

	for name, logo := range map[string][]byte{"jpeg": jpg.Bytes(), "gif": gi.Bytes()} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Render("Acme", "", logo)
			assert.NoError(t, err)
		})
	}
}

func TestRender_CorruptLogo(t *testing.T) {
	r := New()
	_, err := r.Render("Acme Tower", "03-14-2025", []byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestRender_EmptyLogoIsInvalid(t *testing.T) {
	_, err := New().Render("Acme Tower", "", []byte{})
	assert.ErrorIs(t, err, ErrInvalidImage)

	doc, err := New().Render("Acme Tower", "", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
}

func TestRender_Deterministic(t *testing.T) {
	r := New()
	logo := pngBytes(t, 64, 32)

	first, err := r.Render("Acme Tower", "03-14-2025", logo)
	require.NoError(t, err)
	second, err := r.Render("Acme Tower", "03-14-2025", logo)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestRender_Concurrent(t *testing.T) {
	r := New()
	want, err := r.Render("Acme Tower", "03-14-2025", nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := r.Render("Acme Tower", "03-14-2025", nil)
			if err == nil {
				results[i] = doc.Data
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Data, got)
	}
}

func TestRender_Template(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		r := New(WithTemplateFS(fstest.MapFS{}, TemplateName))
		_, err := r.Render("Acme", "", nil)
		assert.ErrorIs(t, err, ErrMissingTemplate)
	})

	t.Run("undecodable", func(t *testing.T) {
		fsys := fstest.MapFS{TemplateName: &fstest.MapFile{Data: []byte("garbage")}}
		r := New(WithTemplateFS(fsys, TemplateName))
		_, err := r.Render("Acme", "", nil)
		assert.ErrorIs(t, err, ErrMissingTemplate)
	})

	t.Run("directory override", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateName), pngBytes(t, 61, 79), 0o644))

		r := New(WithTemplateDir(dir))
		doc, err := r.Render("Acme", "", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Data)
	})
}

func TestRender_TimestampChangesOutput(t *testing.T) {
	a, err := New().Render("Acme", "", nil)
	require.NoError(t, err)

	b, err := New(WithTimestamp(epoch.AddDate(1, 0, 0))).Render("Acme", "", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.Data, b.Data)
}
