// Package render provides the per-frame render queue, easing functions,
// a scalar value animator, and a particle system. The queue holds drawable
// items emitted by the active engine each frame; the platform layer
// consumes the sorted result and owns actual presentation.
package render

import "sort"

// Layer determines the primary draw-order group for an item.
type Layer int

const (
	LayerBackground Layer = iota
	LayerGame
	LayerForeground
	LayerUI
)

// Kind discriminates the renderable item union.
type Kind int

const (
	KindSprite Kind = iota
	KindShape
	KindText
)

// ShapeType selects the geometry of a KindShape item.
type ShapeType int

const (
	ShapeRect ShapeType = iota
	ShapeCircle
)

// Item is one drawable entry in the queue. Which fields matter depends
// on Kind: sprites use Glyph and the rect fields, shapes use Shape plus
// rect or Radius, text uses Text.
type Item struct {
	ID     string
	Kind   Kind
	Layer  Layer
	ZIndex int

	X, Y          float64
	Width, Height float64
	Radius        float64
	Shape         ShapeType
	Glyph         rune
	Text          string
	Color         string
	Opacity       float64

	seq int // insertion order, breaks sort ties
}

// NewSprite creates a sprite item on the game layer.
func NewSprite(id string, x, y, w, h float64, glyph rune, color string) Item {
	return Item{
		ID: id, Kind: KindSprite, Layer: LayerGame,
		X: x, Y: y, Width: w, Height: h,
		Glyph: glyph, Color: color, Opacity: 1,
	}
}

// NewRect creates a rectangular shape item on the game layer.
func NewRect(id string, x, y, w, h float64, color string) Item {
	return Item{
		ID: id, Kind: KindShape, Shape: ShapeRect, Layer: LayerGame,
		X: x, Y: y, Width: w, Height: h,
		Color: color, Opacity: 1,
	}
}

// NewCircle creates a circular shape item on the game layer.
func NewCircle(id string, x, y, r float64, color string) Item {
	return Item{
		ID: id, Kind: KindShape, Shape: ShapeCircle, Layer: LayerGame,
		X: x, Y: y, Radius: r,
		Color: color, Opacity: 1,
	}
}

// NewText creates a text item on the UI layer.
func NewText(id string, x, y float64, text, color string) Item {
	return Item{
		ID: id, Kind: KindText, Layer: LayerUI,
		X: x, Y: y, Text: text,
		Color: color, Opacity: 1,
	}
}

// Queue is the id-keyed registry of renderable items for one frame.
// It is cleared and repopulated every frame, not an accumulating history.
type Queue struct {
	items   map[string]*Item
	nextSeq int
}

// NewQueue creates an empty render queue.
func NewQueue() *Queue {
	return &Queue{items: make(map[string]*Item)}
}

// Add inserts an item, replacing any item with the same id.
// Replacement keeps the original insertion order for tie-breaking.
func (q *Queue) Add(item Item) {
	if existing, ok := q.items[item.ID]; ok {
		item.seq = existing.seq
	} else {
		item.seq = q.nextSeq
		q.nextSeq++
	}
	q.items[item.ID] = &item
}

// Update applies fn to the item with the given id.
// A missing id is a no-op; the return reports whether anything changed.
func (q *Queue) Update(id string, fn func(*Item)) bool {
	item, ok := q.items[id]
	if !ok {
		return false
	}
	fn(item)
	return true
}

// Remove deletes the item with the given id, if present.
func (q *Queue) Remove(id string) {
	delete(q.items, id)
}

// Len returns the number of items currently in the queue.
func (q *Queue) Len() int {
	return len(q.items)
}

// Clear empties the queue. Called once per frame before the active
// engine repopulates it.
func (q *Queue) Clear() {
	q.items = make(map[string]*Item)
	q.nextSeq = 0
}

// Sorted returns the items in draw order: layer ascending, then zIndex
// ascending, with insertion order breaking remaining ties.
func (q *Queue) Sorted() []Item {
	out := make([]Item, 0, len(q.items))
	for _, item := range q.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		if out[i].ZIndex != out[j].ZIndex {
			return out[i].ZIndex < out[j].ZIndex
		}
		return out[i].seq < out[j].seq
	})
	return out
}
