package scrollseq

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one with
// NewTween (or a convenience constructor) and call Update(dt) each tick. The
// group writes values straight into the fields it was given.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// TweenField pairs a destination field with its start and end values.
type TweenField struct {
	Field    *float64
	From, To float64
}

// NewTween creates a group animating every field from From to To over
// duration seconds. Fields beyond the fourth are ignored. The start values
// are written immediately.
func NewTween(duration float32, fn ease.TweenFunc, fields ...TweenField) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{}
	for _, f := range fields {
		if g.count == len(g.tweens) {
			break
		}
		g.tweens[g.count] = gween.New(float32(f.From), float32(f.To), duration, fn)
		g.fields[g.count] = f.Field
		*f.Field = f.From
		g.count++
	}
	if g.count == 0 {
		g.Done = true
	}
	return g
}

// TweenTo animates *field from its current value to the target.
func TweenTo(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTween(duration, fn, TweenField{Field: field, From: *field, To: to})
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
