package extarray

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/parser"
)

// Array is a one-dimensional, buffer-backed column of V values.
type Array[V any] struct {
	kind Kind[V]
	mem  memory.Allocator
	buf  *memory.Buffer
	data []float64

	// storage keeps imported arrow data alive while data views it.
	storage arrow.Array
}

// New parses in and builds an array over the result. When in is a canonical
// parser.Buffer and copying is not requested, the array shares that slice.
func New[V any](kind Kind[V], in parser.Input, opts ...Option) (*Array[V], error) {
	o := resolveOptions(opts)
	values, err := kind.Parse(in)
	if err != nil {
		return nil, err
	}
	if o.copy {
		return copyOf(kind, o.mem, values), nil
	}
	return wrap(kind, o.mem, values), nil
}

// FromBuffer builds an array directly over a canonical buffer, bypassing the parser.
func FromBuffer[V any](kind Kind[V], values []float64, opts ...Option) *Array[V] {
	o := resolveOptions(opts)
	if o.copy {
		return copyOf(kind, o.mem, values)
	}
	return wrap(kind, o.mem, values)
}

// FromArrow builds an array over arrow float64 storage. Null slots always force a
// copy and become the missing-value sentinel. Without copy the array retains arr
// and writes go through to its buffer.
func FromArrow[V any](kind Kind[V], arr *array.Float64, copyData bool, opts ...Option) *Array[V] {
	o := resolveOptions(opts)
	values := arr.Float64Values()
	if copyData || arr.NullN() > 0 {
		out := newOwned(kind, o.mem, arr.Len())
		for i, v := range values {
			if arr.IsNull(i) {
				v = kind.NA()
			}
			out.data[i] = v
		}
		return out
	}

	arr.Retain()
	a := wrap(kind, o.mem, values)
	a.storage = arr
	return a
}

func wrap[V any](kind Kind[V], mem memory.Allocator, values []float64) *Array[V] {
	if values == nil {
		values = []float64{}
	}
	return &Array[V]{
		kind: kind,
		mem:  mem,
		buf:  memory.NewBufferBytes(arrow.Float64Traits.CastToBytes(values)),
		data: values,
	}
}

func newOwned[V any](kind Kind[V], mem memory.Allocator, n int) *Array[V] {
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(arrow.Float64Traits.BytesRequired(n))
	data := arrow.Float64Traits.CastFromBytes(buf.Bytes())
	if data == nil {
		data = []float64{}
	}
	return &Array[V]{
		kind: kind,
		mem:  mem,
		buf:  buf,
		data: data,
	}
}

func copyOf[V any](kind Kind[V], mem memory.Allocator, values []float64) *Array[V] {
	out := newOwned(kind, mem, len(values))
	copy(out.data, values)
	return out
}

// derive allocates an array of n values with the receiver's kind and allocator.
func (a *Array[V]) derive(n int) *Array[V] {
	return newOwned(a.kind, a.mem, n)
}

// Kind returns the unit capability of the array.
func (a *Array[V]) Kind() Kind[V] {
	return a.kind
}

// Allocator returns the allocator derived arrays use.
func (a *Array[V]) Allocator() memory.Allocator {
	return a.mem
}

// Len returns the number of elements.
func (a *Array[V]) Len() int {
	return len(a.data)
}

// Shape returns the one-dimensional shape.
func (a *Array[V]) Shape() []int {
	return []int{len(a.data)}
}

// NBytes returns the size of the value buffer in bytes.
func (a *Array[V]) NBytes() int {
	return arrow.Float64Traits.BytesRequired(len(a.data))
}

// Values returns the canonical buffer. The slice is shared with the array.
func (a *Array[V]) Values() []float64 {
	return a.data
}

// ToList returns a copy of the canonical buffer.
func (a *Array[V]) ToList() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// Copy returns a deep copy in a fresh buffer.
func (a *Array[V]) Copy() *Array[V] {
	return copyOf(a.kind, a.mem, a.data)
}

// ArrowStorage exports the buffer as an arrow float64 array without copying.
// The caller must release the result.
func (a *Array[V]) ArrowStorage() *array.Float64 {
	buf := a.buf
	if buf == nil {
		buf = memory.NewBufferBytes(nil)
	}
	data := array.NewData(arrow.PrimitiveTypes.Float64, len(a.data), []*memory.Buffer{nil, buf}, nil, 0, 0)
	defer data.Release()
	return array.NewFloat64Data(data)
}

// Release frees buffers allocated for the array. The array is empty afterwards.
func (a *Array[V]) Release() {
	a.dropStorage()
	a.data = []float64{}
}

func (a *Array[V]) dropStorage() {
	if a.buf != nil {
		a.buf.Release()
		a.buf = nil
	}
	if a.storage != nil {
		a.storage.Release()
		a.storage = nil
	}
}

// replace swaps in a freshly allocated buffer, releasing the current one.
func (a *Array[V]) replace(next *Array[V]) {
	a.dropStorage()
	a.buf = next.buf
	a.data = next.data
}

func (a *Array[V]) checkOperand(op string, other *Array[V]) error {
	if other == nil {
		return errors.NewTypeMismatchError(op, other)
	}
	if !sameKind(a.kind, other.kind) {
		return errors.NewTypeMismatchError(op, other.kind)
	}
	return nil
}
