package extarray

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Option configures array construction.
type Option func(*options)

type options struct {
	copy bool
	mem  memory.Allocator
}

func resolveOptions(opts []Option) options {
	o := options{mem: memory.DefaultAllocator}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCopy forces a fresh buffer even when the input is already canonical.
func WithCopy(copy bool) Option {
	return func(o *options) {
		o.copy = copy
	}
}

// WithAllocator sets the allocator used for every buffer the array and its
// derived arrays allocate.
func WithAllocator(mem memory.Allocator) Option {
	return func(o *options) {
		if mem != nil {
			o.mem = mem
		}
	}
}

// TakeOptions controls Take. A nil *TakeOptions is a plain positional take.
type TakeOptions struct {
	// AllowFill makes -1 select FillValue instead of the last element.
	AllowFill bool
	// FillValue defaults to the kind's missing-value sentinel.
	FillValue *float64
}

// WithFill returns options for a fill take using v.
func WithFill(v float64) *TakeOptions {
	return &TakeOptions{AllowFill: true, FillValue: &v}
}

// WithNAFill returns options for a fill take using the missing-value sentinel.
func WithNAFill() *TakeOptions {
	return &TakeOptions{AllowFill: true}
}
