package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 256

// LRU is a fixed-size least recently used cache. Evicted and cleared values are passed
// to onEvict.
type LRU[K comparable, V any] struct {
	items   map[K]*list.Element
	order   *list.List // front is most recently used
	maxSize int
	onEvict func(K, V)
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a cache holding at most maxSize values.
func NewLRU[K comparable, V any](maxSize int, onEvict func(K, V)) *LRU[K, V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[K, V]{
		items:   make(map[K]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		onEvict: onEvict,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (c *LRU[K, V]) Set(key K, value V) {
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*lruEntry[K, V])
		if c.onEvict != nil {
			c.onEvict(key, entry.value)
		}
		entry.value = value
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
}

func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

func (c *LRU[K, V]) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	entry := c.order.Remove(el).(*lruEntry[K, V])
	delete(c.items, entry.key)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}

// Clear evicts every value.
func (c *LRU[K, V]) Clear() {
	for c.order.Len() > 0 {
		c.evictOldest()
	}
}

// TextKey identifies a rendered label.
type TextKey struct {
	Text  string
	Size  int
	Bold  bool
	Color sdl.Color
}

// TextTexture is a rendered label and its size in pixels.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextCache keeps rendered labels so the wheel does not rasterize every row on every frame.
type TextCache struct {
	renderer *sdl.Renderer
	lru      *LRU[TextKey, TextTexture]
}

func NewTextCache(renderer *sdl.Renderer) *TextCache {
	return NewTextCacheWithSize(renderer, defaultMaxCacheSize)
}

func NewTextCacheWithSize(renderer *sdl.Renderer, maxSize int) *TextCache {
	return &TextCache{
		renderer: renderer,
		lru: NewLRU(maxSize, func(_ TextKey, t TextTexture) {
			if t.Texture != nil {
				t.Texture.Destroy()
			}
		}),
	}
}

// Get returns the label for key, rendering it on a miss.
func (c *TextCache) Get(key TextKey) (TextTexture, error) {
	if t, ok := c.lru.Get(key); ok {
		return t, nil
	}

	font, err := GetFont(key.Size, key.Bold)
	if err != nil {
		return TextTexture{}, err
	}
	t, err := renderText(c.renderer, font, key.Text, key.Color)
	if err != nil {
		return TextTexture{}, err
	}
	c.lru.Set(key, t)
	return t, nil
}

func (c *TextCache) Destroy() {
	c.lru.Clear()
}
