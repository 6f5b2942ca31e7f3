// Package orderedmap provides a generic map which remembers insertion order.
//
// The input cursor uses it so that options and flags can be reported back in the
// order they were first seen on the command line.
package orderedmap

import (
	"container/list"
)

// Element is a key-value pair stored in an OrderedMap. Use Next to walk the map
// from Front to back.
type Element[K comparable, V any] struct {
	Key   K
	Value V

	e *list.Element
}

// Next returns the element inserted after this one, or nil at the end of the map
func (el *Element[K, V]) Next() *Element[K, V] {
	if el == nil || el.e == nil {
		return nil
	}

	n := el.e.Next()
	if n == nil {
		return nil
	}

	return n.Value.(*Element[K, V])
}

// OrderedMap stores key-value pairs in insertion order. Overwriting an existing
// key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*Element[K, V]
	order *list.List
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*Element[K, V]{},
		order: list.New(),
	}
}

// Set stores val under key
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if el, found := o.store[key]; found {
		el.Value = val
		return
	}

	el := &Element[K, V]{Key: key, Value: val}
	el.e = o.order.PushBack(el)
	o.store[key] = el
}

// Get returns the value stored under key and true, or the zero value and false
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, found := o.store[key]
	if !found {
		var zero V
		return zero, false
	}

	return el.Value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, found := o.store[key]
	return found
}

// Delete removes key. Deleting a missing key is a no-op.
func (o *OrderedMap[K, V]) Delete(key K) {
	el, found := o.store[key]
	if !found {
		return
	}

	o.order.Remove(el.e)
	delete(o.store, key)
}

// Count returns the number of stored keys
func (o *OrderedMap[K, V]) Count() int {
	return o.order.Len()
}

// Front returns the oldest element or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Element[K, V] {
	f := o.order.Front()
	if f == nil {
		return nil
	}

	return f.Value.(*Element[K, V])
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.order.Len())
	for el := o.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}

	return keys
}
