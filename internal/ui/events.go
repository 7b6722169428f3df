package ui

import (
	"errors"
	"fmt"
)

// Source names a form-level event source.
type Source string

const (
	FilterChange Source = "filters.change"
	PriceInput   Source = "priceRange.input"
	ResetFilters Source = "resetFilters.click"
	SearchSubmit Source = "searchForm.submit"
)

var ErrAlreadyBound = errors.New("event source already bound")

// Bus routes named event sources to their single subscriber.
type Bus struct {
	handlers map[Source]func()
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Source]func())}
}

// Bind subscribes fn to src. Each source accepts one binding for its lifetime.
func (b *Bus) Bind(src Source, fn func()) error {
	if _, ok := b.handlers[src]; ok {
		return fmt.Errorf("%s: %w", src, ErrAlreadyBound)
	}
	b.handlers[src] = fn
	return nil
}

func (b *Bus) Bound(src Source) bool {
	_, ok := b.handlers[src]
	return ok
}

// Dispatch invokes the subscriber of src synchronously.
func (b *Bus) Dispatch(src Source) bool {
	fn, ok := b.handlers[src]
	if !ok {
		return false
	}
	fn()
	return true
}
