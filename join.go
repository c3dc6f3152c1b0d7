package jsarray

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type joinCtx struct {
	sb      strings.Builder
	visited map[*Array]struct{}
	elem    func(ctx *joinCtx, v Value)
}

// Join concatenates the string forms of the elements separated by sep, the
// way Array.prototype.join does: holes, null and undefined are empty, nested
// arrays are joined with "," and an array already being joined is empty.
func (a *Array) Join(sep string) string {
	ctx := &joinCtx{elem: (*joinCtx).writeElem}
	ctx.join(a, sep)
	return ctx.sb.String()
}

// ToLocaleString is like String but formats numbers for the given locale.
func (a *Array) ToLocaleString(tag language.Tag) string {
	p := message.NewPrinter(tag)
	ctx := &joinCtx{}
	ctx.elem = func(ctx *joinCtx, v Value) {
		switch v := v.(type) {
		case valueInt:
			ctx.sb.WriteString(p.Sprint(number.Decimal(int64(v))))
		case valueFloat:
			ctx.sb.WriteString(p.Sprint(number.Decimal(float64(v))))
		default:
			ctx.writeElem(v)
		}
	}
	ctx.join(a, ",")
	return ctx.sb.String()
}

func (ctx *joinCtx) join(a *Array, sep string) {
	if _, seen := ctx.visited[a]; seen {
		return
	}
	if ctx.visited == nil {
		ctx.visited = make(map[*Array]struct{})
	}
	ctx.visited[a] = struct{}{}
	defer delete(ctx.visited, a)

	var last int64
	a.indexed.ascending(func(idx int64, val Value) bool {
		if idx >= a.length {
			return false
		}
		for ; last < idx; last++ {
			ctx.sb.WriteString(sep)
		}
		ctx.elem(ctx, val)
		return true
	})
	for ; last < a.length-1; last++ {
		ctx.sb.WriteString(sep)
	}
}

func (ctx *joinCtx) writeElem(v Value) {
	switch v := v.(type) {
	case valueNull, valueUndefined:
	case *Array:
		ctx.join(v, ",")
	default:
		ctx.sb.WriteString(v.String())
	}
}
