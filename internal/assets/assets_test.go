package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"love-museum/internal/logger"
)

func TestResolve(t *testing.T) {
	c := New("public", nil)
	assert.Equal(t, filepath.Join("public", "images", "a.png"), c.Resolve("images/a.png"))
	assert.Equal(t, "/abs/b.png", c.Resolve("/abs/b.png"))
	assert.Equal(t, "", c.Resolve(""))
	assert.Equal(t, "images/a.png", New("", nil).Resolve("images/a.png"))
}

func TestRequestDeduplicates(t *testing.T) {
	c := New("public", nil)
	c.Request("images/a.png", "", "images/b.png", "images/a.png")
	c.Request("images/b.png")
	assert.Equal(t, 2, c.Pending())
	assert.False(t, c.Ready())
}

func TestMissingFilesAreLoggedAndReported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New(t.TempDir(), logger.Wrap(zap.New(core)))
	c.Request("images/nope.png")

	loaded, missing := c.LoadPending()
	assert.Equal(t, 0, loaded)
	assert.Equal(t, 1, missing)
	assert.True(t, c.Ready())
	assert.True(t, c.Missing("images/nope.png"))
	assert.Zero(t, c.Texture("images/nope.png").ID)
	assert.Equal(t, float32(1), c.Aspect("images/nope.png"))
	assert.Equal(t, 1, logs.FilterMessage("texture missing").Len())

	// A missing path is not queued again.
	c.Request("images/nope.png")
	assert.True(t, c.Ready())
}

func TestAspect(t *testing.T) {
	assert.Equal(t, float32(1.5), aspect(300, 200))
	assert.Equal(t, float32(1), aspect(0, 200))
	assert.Equal(t, float32(1), aspect(300, 0))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "images", "a.png")
	writePNG(t, path, 40, 20)

	img, err := decode(path)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())

	bad := filepath.Join(dir, "images", "b.jpeg")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = decode(bad)
	assert.Error(t, err)

	_, err = decode(filepath.Join(dir, "none.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestBrokenFileIsReportedMissing(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("junk"), 0644))
	c := New(dir, logger.Wrap(zap.New(core)))
	c.Request("b.png")

	loaded, missing := c.LoadPending()
	assert.Equal(t, 0, loaded)
	assert.Equal(t, 1, missing)
	assert.Equal(t, 1, logs.FilterMessage("texture failed to decode").Len())
}

func TestFitKeepsAspect(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Same(t, small, fit(small, 2048).(*image.RGBA))

	wide := fit(image.NewRGBA(image.Rect(0, 0, 4032, 3024)), 2048)
	assert.Equal(t, 2048, wide.Bounds().Dx())
	assert.Equal(t, 1536, wide.Bounds().Dy())

	tall := fit(image.NewRGBA(image.Rect(0, 0, 3024, 4032)), 2048)
	assert.Equal(t, 1536, tall.Bounds().Dx())
	assert.Equal(t, 2048, tall.Bounds().Dy())
}

func TestDecodeAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 30, 10)
	writePNG(t, filepath.Join(dir, "c.png"), 10, 40)
	c := New(dir, nil)

	res := c.decodeAll([]string{"a.png", "b.png", "c.png"})
	require.Len(t, res, 3)
	assert.Equal(t, 30, res[0].width)
	assert.NotNil(t, res[0].img)
	assert.True(t, os.IsNotExist(res[1].err))
	assert.Equal(t, 40, res[2].height)
}
