package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyLoader_LoadsOnlyVisibleImages(t *testing.T) {
	visible := &LazyImage{DataSrc: "/img/a.jpg", Bounds: Rect{Top: 100, Left: 0, Bottom: 200, Right: 300}}
	belowFold := &LazyImage{DataSrc: "/img/b.jpg", Bounds: Rect{Top: 2000, Left: 0, Bottom: 2100, Right: 300}}

	loader := NewLazyLoader(visible, belowFold)
	viewport := Rect{Top: 0, Left: 0, Bottom: 800, Right: 1280}

	require.Equal(t, 1, loader.Check(viewport))
	require.True(t, visible.Loaded)
	require.Equal(t, "/img/a.jpg", visible.Src)
	require.False(t, belowFold.Loaded)
	require.Empty(t, belowFold.Src)
	require.Equal(t, 1, loader.Pending())
}

func TestLazyLoader_LoadsExactlyOnce(t *testing.T) {
	img := &LazyImage{DataSrc: "/img/a.jpg", Bounds: Rect{Top: 0, Left: 0, Bottom: 100, Right: 100}}
	loader := NewLazyLoader(img)
	viewport := Rect{Top: 0, Left: 0, Bottom: 800, Right: 1280}

	require.Equal(t, 1, loader.Check(viewport))
	require.Equal(t, 0, loader.Check(viewport))
	require.Equal(t, 0, loader.Check(viewport))
	require.True(t, img.Loaded)
}

func TestLazyLoader_LoadsAfterScroll(t *testing.T) {
	img := &LazyImage{DataSrc: "/img/b.jpg", Bounds: Rect{Top: 2000, Left: 0, Bottom: 2100, Right: 300}}
	loader := NewLazyLoader(img)

	require.Equal(t, 0, loader.Check(Rect{Top: 0, Left: 0, Bottom: 800, Right: 1280}))

	scrolled := Rect{Top: 1500, Left: 0, Bottom: 2300, Right: 1280}
	require.Equal(t, 1, loader.Check(scrolled))
	require.True(t, img.Loaded)
}

func TestRect_Intersects(t *testing.T) {
	viewport := Rect{Top: 0, Left: 0, Bottom: 800, Right: 1280}

	require.True(t, Rect{Top: 700, Left: 0, Bottom: 900, Right: 100}.Intersects(viewport))
	require.False(t, Rect{Top: 800, Left: 0, Bottom: 900, Right: 100}.Intersects(viewport))
	require.False(t, Rect{Top: 0, Left: 1280, Bottom: 100, Right: 1400}.Intersects(viewport))
}
