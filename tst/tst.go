package tst

import (
	"errors"
	"fmt"
)

// DefaultWildcard is the marker used unless WithWildcard says otherwise
const DefaultWildcard byte = '*'

var (
	ErrEmptyInput       = errors.New("tst: empty input")
	ErrTooManyWildcards = errors.New("tst: more than one wildcard in pattern")
)

type Index struct {
	pool  *NodePool
	root  int
	size  int // number of distinct keys
	nodes int // number of nodes owned by this index
	wild  byte
}

type options struct {
	pool *NodePool
	keys []string
	wild byte
}

type Option func(*options)

// WithWildcard sets the pattern marker
func WithWildcard(marker byte) Option {
	return func(o *options) {
		o.wild = marker
	}
}

// WithPool makes the index allocate its nodes from a (possibly shared) pool
func WithPool(pool *NodePool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithKeys inserts keys right after construction. Empty keys are skipped.
func WithKeys(keys ...string) Option {
	return func(o *options) {
		o.keys = append(o.keys, keys...)
	}
}

func New(opts ...Option) *Index {
	return InitIndex(&Index{}, opts...)
}

func InitIndex(t *Index, opts ...Option) *Index {
	o := options{wild: DefaultWildcard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = NewNodePool(0)
	}
	*t = Index{
		pool: o.pool,
		root: nilRef,
		wild: o.wild,
	}
	for _, key := range o.keys {
		_ = t.Insert(key)
	}
	return t
}

// Len returns the number of keys in the index.
func (t *Index) Len() int {
	return t.size
}

// Nodes returns the number of tree nodes allocated by the index.
func (t *Index) Nodes() int {
	return t.nodes
}

func (t *Index) Empty() bool {
	return t.root == nilRef
}

// Wildcard returns the pattern marker of the index.
func (t *Index) Wildcard() byte {
	return t.wild
}

// Insert adds a key to the index. Inserting a known key is a no-op.
func (t *Index) Insert(key string) error {
	if key == "" {
		return fmt.Errorf("insert: %w", ErrEmptyInput)
	}
	var (
		last  = len(key) - 1
		ref   = t.root
		depth int
		// the slot the current ref came from: a parent node and its child
		// number, or the root when parent is nilRef
		parent = nilRef
		slot   int
	)

	for {
		c := key[depth]

		if ref == nilRef {
			ref = t.pool.GetNode(c)
			t.nodes++
			if parent == nilRef {
				t.root = ref
			} else {
				t.pool.Nodes[parent].child[slot] = ref
			}
		}
		n := &t.pool.Nodes[ref]

		switch {
		case c < n.char:
			slot = lo
		case c > n.char:
			slot = hi
		case depth < last:
			slot = eq
			depth++
		default:
			if !n.end {
				n.end = true
				t.size++
			}
			return nil
		}
		parent, ref = ref, n.child[slot]
	}
}

// Has reports whether the key was inserted.
func (t *Index) Has(key string) bool {
	if key == "" {
		return false
	}
	var (
		last  = len(key) - 1
		ref   = t.root
		depth int
	)

	for ref != nilRef {
		n := &t.pool.Nodes[ref]
		c := key[depth]

		switch {
		case c < n.char:
			ref = n.child[lo]
		case c > n.char:
			ref = n.child[hi]
		case depth < last:
			ref = n.child[eq]
			depth++
		default:
			return n.end
		}
	}
	return false
}
