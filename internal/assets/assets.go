package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"love-museum/internal/logger"
)

// MaxSide is the longest texture edge uploaded; larger photos are scaled down first.
const MaxSide = 2048

// Cache loads textures once and hands them out by their layout path (e.g. "images/x.png").
// Loading is deferred: Request only records paths, LoadPending uploads them and needs the
// window's OpenGL context. Missing or broken files are logged once and then report a zero texture.
type Cache struct {
	dir      string
	log      *logger.Logger
	pending  []string
	textures map[string]rl.Texture2D
	missing  map[string]bool
}

// New returns an empty cache resolving relative paths against dir.
func New(dir string, log *logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{
		dir:      dir,
		log:      log,
		textures: make(map[string]rl.Texture2D),
		missing:  make(map[string]bool),
	}
}

// Resolve maps a layout path to a file path. Absolute paths are used as-is.
func (c *Cache) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, filepath.FromSlash(path))
}

// Request queues paths for the next LoadPending. Known and already queued paths are skipped.
func (c *Cache) Request(paths ...string) {
	for _, p := range paths {
		if p == "" || c.known(p) || c.queued(p) {
			continue
		}
		c.pending = append(c.pending, p)
	}
}

func (c *Cache) known(p string) bool {
	_, ok := c.textures[p]
	return ok || c.missing[p]
}

func (c *Cache) queued(p string) bool {
	for _, q := range c.pending {
		if q == p {
			return true
		}
	}
	return false
}

// Pending returns the number of queued paths.
func (c *Cache) Pending() int {
	return len(c.pending)
}

// Ready reports whether every requested texture has been attempted.
func (c *Cache) Ready() bool {
	return len(c.pending) == 0
}

// LoadPending decodes every queued image on a worker pool, scales it to fit MaxSide and
// uploads it with trilinear mipmaps and repeat wrapping. Uploads happen on the calling
// goroutine, which must own the window's GL context.
func (c *Cache) LoadPending() (loaded, missing int) {
	results := c.decodeAll(c.pending)
	for i, p := range c.pending {
		r := results[i]
		if r.err != nil || r.img == nil {
			msg := "texture failed to decode"
			if os.IsNotExist(r.err) {
				msg = "texture missing"
			}
			c.log.Warn(msg, zap.String("path", c.Resolve(p)), zap.Error(r.err))
			c.missing[p] = true
			missing++
			continue
		}
		c.textures[p] = upload(r.img)
		loaded++
		c.log.Debug("texture loaded", zap.String("path", p), zap.Int("width", r.width), zap.Int("height", r.height))
	}
	c.pending = c.pending[:0]
	return loaded, missing
}

// decoded is a CPU-side image ready for upload, with the size it had on disk.
type decoded struct {
	img           image.Image
	width, height int
	err           error
}

func decodeFit(path string) decoded {
	img, err := decode(path)
	if err != nil {
		return decoded{err: err}
	}
	b := img.Bounds()
	return decoded{img: fit(img, MaxSide), width: b.Dx(), height: b.Dy()}
}

// decodeAll decodes paths concurrently; result i belongs to paths[i]. A decode that panics
// leaves an empty result, which LoadPending reports as a failed decode.
func (c *Cache) decodeAll(paths []string) []decoded {
	out := make([]decoded, len(paths))
	pool, err := ants.NewPool(runtime.NumCPU(), ants.WithPanicHandler(func(p any) {
		c.log.Error("texture decode panicked", zap.Any("panic", p))
	}))
	if err != nil {
		for i, p := range paths {
			out[i] = decodeFit(c.Resolve(p))
		}
		return out
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, p := range paths {
		full := c.Resolve(p)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i] = decodeFit(full)
		}); err != nil {
			wg.Done()
			out[i] = decodeFit(full)
		}
	}
	wg.Wait()
	return out
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// fit scales img down so neither edge exceeds maxSide, keeping its aspect ratio.
func fit(img image.Image, maxSide int) image.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}
	return transform.Resize(img, w, h, transform.Linear)
}

func upload(img image.Image) rl.Texture2D {
	im := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(im)
	rl.UnloadImage(im)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	return tex
}

// Texture returns the loaded texture for path, or a zero texture when it is missing or not loaded yet.
func (c *Cache) Texture(path string) rl.Texture2D {
	return c.textures[path]
}

// Aspect returns width/height of the loaded image at path, or 1 when unknown.
func (c *Cache) Aspect(path string) float32 {
	t, ok := c.textures[path]
	if !ok {
		return 1
	}
	return aspect(t.Width, t.Height)
}

func aspect(w, h int32) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Missing reports whether path was requested but could not be loaded.
func (c *Cache) Missing(path string) bool {
	return c.missing[path]
}

// Unload releases every texture. Call before the window closes.
func (c *Cache) Unload() {
	for p, t := range c.textures {
		rl.UnloadTexture(t)
		delete(c.textures, p)
	}
}
