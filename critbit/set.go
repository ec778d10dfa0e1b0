// Package critbit implements a set of strings on a crit-bit tree. It serves the same
// insert/search contract as package tst and is used to cross-check it.
package critbit

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultWildcard byte = '*'

var (
	ErrEmptyInput       = errors.New("critbit: empty input")
	ErrTooManyWildcards = errors.New("critbit: more than one wildcard in pattern")
)

// Ref holds either a Key or a Node pointer
type Ref struct {
	Key  string
	node *Node
}

type Node struct {
	child [2]Ref
	// off is the offset of the differing byte
	off int
	// bit contains the single crit bit in the differing byte
	bit byte
}

type Set struct {
	size int
	root Ref
	wild byte
}

// dir calculates the direction for the given key
func (n *Node) dir(key string) byte {
	if n.off < len(key) && key[n.off]&n.bit != 0 {
		return 1
	}
	return 0
}

func InitSet(set *Set, keys ...string) *Set {
	*set = Set{wild: DefaultWildcard}
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

func NewSet(keys ...string) *Set {
	return InitSet(&Set{}, keys...)
}

// SetWildcard changes the pattern marker.
func (t *Set) SetWildcard(marker byte) {
	t.wild = marker
}

// Len returns the number of keys in the tree.
func (t *Set) Len() int {
	return t.size
}

func (t *Set) Empty() bool {
	return t.root.node == nil && t.root.Key == ""
}

func (t *Set) Has(key string) bool {
	if t.Empty() || key == "" {
		return false
	}
	// walk for best member
	p := t.root
	for p.node != nil {
		p = p.node.child[p.node.dir(key)]
	}
	return p.Key == key
}

// Add inserts a key. Returns whether the key is new.
// The empty key is never stored.
func (t *Set) Add(key string) bool {
	if key == "" {
		return false
	}
	if t.Empty() {
		t.root.Key = key
		t.size++
		return true
	}
	// walk for best member
	p := &t.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}
	// find differing byte
	var (
		off  int
		ch   byte
		bit  byte
		klen = len(key)
		plen = len(p.Key)
	)
	for off = 0; off < klen; off++ {
		if ch = 0; off < plen {
			ch = p.Key[off]
		}
		if keych := key[off]; ch != keych {
			bit = ch ^ keych
			goto ByteFound
		}
	}
	if off < plen {
		ch = p.Key[off]
		bit = ch
		goto ByteFound
	}
	// key exists
	return false
ByteFound:
	// keep the highest differing bit only
	bit |= bit >> 1
	bit |= bit >> 2
	bit |= bit >> 4
	bit = bit &^ (bit >> 1)
	var ndir byte
	if ch&bit != 0 {
		ndir++
	}
	nn := &Node{off: off, bit: bit}
	nn.child[1-ndir].Key = key

	// walk for best insertion node
	wp := &t.root
	for wp.node != nil {
		n := wp.node
		if n.off > off || n.off == off && n.bit < bit {
			break
		}
		wp = &n.child[n.dir(key)]
	}
	nn.child[ndir] = *wp
	wp.node = nn
	wp.Key = ""
	t.size++

	return true
}

// Insert adds a key, failing on the empty one.
func (t *Set) Insert(key string) error {
	if key == "" {
		return fmt.Errorf("insert: %w", ErrEmptyInput)
	}
	t.Add(key)
	return nil
}

// Iter calls a handler for all keys with a given prefix in sorted order.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Set) Iter(prefix string, handler func(string) bool) bool {
	if t.Empty() {
		return true
	}
	if prefix == "" {
		return t.iterate(t.root, handler)
	}
	// walk for best member
	p, top := t.root, t.root
	for p.node != nil {
		newtop := p.node.off < len(prefix)
		p = p.node.child[p.node.dir(prefix)]
		if newtop {
			top = p
		}
	}
	if !strings.HasPrefix(p.Key, prefix) {
		return true
	}
	return t.iterate(top, handler)
}

// iterate calls the key handler or traverses both node children unless aborted.
func (t *Set) iterate(p Ref, h func(string) bool) bool {
	if p.node != nil {
		return t.iterate(p.node.child[0], h) && t.iterate(p.node.child[1], h)
	}
	return h(p.Key)
}

// Keys returns all keys in a sorted order.
func (t *Set) Keys() []string {
	keys := make([]string, 0, t.size)

	if t.Empty() {
		return keys
	}

	// Walk the tree without function recursion
	toVisit := []*Ref{&t.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if p.node == nil {
			keys = append(keys, p.Key)
		} else {
			toVisit = append(toVisit, &p.node.child[1], &p.node.child[0])
		}
	}
	return keys
}

// Search returns all keys matching the pattern in sorted order.
// A trailing marker matches any suffix, a marker elsewhere matches one byte.
func (t *Set) Search(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("search: %w", ErrEmptyInput)
	}
	w := strings.IndexByte(pattern, t.wild)
	if w >= 0 && strings.IndexByte(pattern[w+1:], t.wild) >= 0 {
		return nil, fmt.Errorf("search %q: %w", pattern, ErrTooManyWildcards)
	}
	if w < 0 {
		if t.Has(pattern) {
			return []string{pattern}, nil
		}
		return nil, nil
	}

	var keys []string
	t.Iter(pattern[:w], func(key string) bool {
		if match(key, pattern, w) {
			keys = append(keys, key)
		}
		return true
	})
	return keys, nil
}

// match tests a key sharing pattern[:w] against a pattern with its marker at w
func match(key, pattern string, w int) bool {
	if w == len(pattern)-1 {
		return true
	}
	switch len(key) {
	case w:
		// the key ends right before the marker
		return w > 0
	case w + 1:
		return true
	case len(pattern):
		return key[w+1:] == pattern[w+1:]
	}
	return false
}
