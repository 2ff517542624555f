package site

// Rect is an element or viewport bounding box in page coordinates.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Intersects reports whether two boxes overlap at all.
func (r Rect) Intersects(other Rect) bool {
	return r.Top < other.Bottom &&
		r.Bottom > other.Top &&
		r.Left < other.Right &&
		r.Right > other.Left
}

// LazyImage defers its source assignment until the element scrolls
// into view. Loaded flips exactly once so the asset is fetched once.
type LazyImage struct {
	DataSrc string
	Src     string
	Loaded  bool
	Bounds  Rect
}

// LazyLoader tracks a page's deferred images.
type LazyLoader struct {
	images []*LazyImage
}

func NewLazyLoader(images ...*LazyImage) *LazyLoader {
	return &LazyLoader{images: images}
}

func (l *LazyLoader) Observe(img *LazyImage) {
	if img == nil {
		return
	}
	l.images = append(l.images, img)
}

// Check assigns the real source to every not-yet-loaded image whose
// bounds intersect the viewport. Returns how many images loaded on
// this pass.
func (l *LazyLoader) Check(viewport Rect) int {
	loaded := 0
	for _, img := range l.images {
		if img.Loaded {
			continue
		}
		if !img.Bounds.Intersects(viewport) {
			continue
		}
		img.Src = img.DataSrc
		img.Loaded = true
		loaded++
	}
	return loaded
}

// Pending returns how many images still wait for their source.
func (l *LazyLoader) Pending() int {
	pending := 0
	for _, img := range l.images {
		if !img.Loaded {
			pending++
		}
	}
	return pending
}
