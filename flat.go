package jsarray

import (
	"io"

	"github.com/sirupsen/logrus"
)

// TransformFunc is the callback of Map and FlatMap. It is called with the
// element, its index and the array being traversed. An error aborts the
// traversal and is returned to the caller unmodified.
type TransformFunc func(value Value, index int64, array *Array) (Value, error)

// Flattener implements flat and flatMap with an explicit frame stack, so that
// neither the nesting of the data nor the requested depth can exhaust the
// goroutine stack.
type Flattener struct {
	// MaxDepth is the number of nested arrays that may be open at once.
	MaxDepth int
	// MaxElements caps the length of a result.
	MaxElements int64
	// MaxFrames caps the number of nested arrays one Flat descends into,
	// counting an array shared by several parents once per visit.
	MaxFrames int64
	Logger    logrus.FieldLogger
}

var defaultFlattener = NewFlattener(NewConfig(), nil)

// NewFlattener returns a Flattener with the limits of conf. Unset limits use
// the defaults. A nil logger discards everything.
func NewFlattener(conf Config, logger logrus.FieldLogger) *Flattener {
	conf = NewConfig().Apply(conf)
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	maxElements := conf.FlatMaxElements.Int64
	if maxElements > maxLength {
		maxElements = maxLength
	}
	return &Flattener{
		MaxDepth:    int(conf.FlatMaxDepth.Int64),
		MaxElements: maxElements,
		MaxFrames:   conf.FlatMaxFrames.Int64,
		Logger:      logger,
	}
}

type flatFrame struct {
	src     *Array
	indices []int64
	pos     int
	depth   int64
}

func (f *Flattener) newFrame(src *Array, depth int64) flatFrame {
	return flatFrame{
		src:     src,
		indices: src.indexed.indices(src.length),
		depth:   depth,
	}
}

func (f *Flattener) depthExceeded(a *Array) error {
	f.Logger.WithFields(logrus.Fields{
		"length": a.length,
		"limit":  f.MaxDepth,
	}).Debug("flat depth limit exceeded")
	return &RecursionLimitExceeded{Limit: "depth", Max: int64(f.MaxDepth)}
}

func (f *Flattener) elementsExceeded(a *Array) error {
	f.Logger.WithFields(logrus.Fields{
		"length": a.length,
		"limit":  f.MaxElements,
	}).Debug("flat element limit exceeded")
	return &RecursionLimitExceeded{Limit: "elements", Max: f.MaxElements}
}

func (f *Flattener) framesExceeded(a *Array) error {
	f.Logger.WithFields(logrus.Fields{
		"length": a.length,
		"limit":  f.MaxFrames,
	}).Debug("flat frame limit exceeded")
	return &RecursionLimitExceeded{Limit: "frames", Max: f.MaxFrames}
}

func (f *Flattener) append(res *Array, v Value) bool {
	if res.length >= f.MaxElements {
		return false
	}
	res.putIdx(res.length, v)
	return true
}

// Flat returns a new array with the elements of a, nested arrays spliced in up
// to depth levels. Holes are dropped; null and undefined are kept. A negative
// depth is treated as 0, which yields a copy of a without holes.
func (f *Flattener) Flat(a *Array, depth int64) (*Array, error) {
	if depth < 0 {
		depth = 0
	}
	f.Logger.WithFields(logrus.Fields{
		"depth":  depth,
		"length": a.length,
	}).Debug("flat")

	res := NewArray()
	stack := []flatFrame{f.newFrame(a, depth)}
	var frames int64
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos >= len(top.indices) {
			stack[len(stack)-1] = flatFrame{}
			stack = stack[:len(stack)-1]
			continue
		}
		idx := top.indices[top.pos]
		top.pos++
		v := top.src.indexed.get(idx)
		if v == nil {
			continue
		}
		if nested, ok := v.(*Array); ok && top.depth > 0 {
			if len(stack) > f.MaxDepth {
				return nil, f.depthExceeded(a)
			}
			if frames++; frames > f.MaxFrames {
				return nil, f.framesExceeded(a)
			}
			stack = append(stack, f.newFrame(nested, top.depth-1))
			continue
		}
		if !f.append(res, v) {
			return nil, f.elementsExceeded(a)
		}
	}
	return res, nil
}

// FlatMap calls fn for each element of a and returns a new array of the
// results, with array results spliced in one level deep.
//
// The indices to visit are fixed when FlatMap is called: indices fn adds are
// not visited, indices fn deletes before they are reached are skipped, and
// the values read are the ones present at the time of the visit.
func (f *Flattener) FlatMap(a *Array, fn TransformFunc) (*Array, error) {
	f.Logger.WithField("length", a.length).Debug("flatMap")

	res := NewArray()
	for _, idx := range a.indexed.indices(a.length) {
		v := a.indexed.get(idx)
		if v == nil {
			continue
		}
		mapped, err := fn(v, idx, a)
		if err != nil {
			return nil, err
		}
		if mapped == nil {
			mapped = _undefined
		}
		nested, ok := mapped.(*Array)
		if !ok {
			if !f.append(res, mapped) {
				return nil, f.elementsExceeded(a)
			}
			continue
		}
		for _, j := range nested.indexed.indices(nested.length) {
			if !f.append(res, nested.indexed.get(j)) {
				return nil, f.elementsExceeded(a)
			}
		}
	}
	return res, nil
}

// Flat flattens a with the default limits.
func Flat(a *Array, depth int64) (*Array, error) {
	return defaultFlattener.Flat(a, depth)
}

// FlatMap maps and flattens a with the default limits.
func FlatMap(a *Array, fn TransformFunc) (*Array, error) {
	return defaultFlattener.FlatMap(a, fn)
}
