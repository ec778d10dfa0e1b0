package tst

import "fmt"

// frame kinds
const (
	visitSide   = iota // root, lo or hi child: the prefix is already in place
	visitMiddle        // eq child: its parent byte goes to the end of the prefix first
	emitKey            // the prefix plus the node byte is a match
)

type frame struct {
	ref   int
	depth int
	// plen is the length of the prefix matched above the node
	plen int
	lead byte
	kind uint8
}

// Search returns all keys matching the pattern in ascending byte order.
func (t *Index) Search(pattern string) ([]string, error) {
	var keys []string

	_, err := t.Match(pattern, func(key string) bool {
		keys = append(keys, key)
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Keys returns all keys in ascending byte order.
func (t *Index) Keys() []string {
	keys := make([]string, 0, t.size)

	t.walk(string([]byte{t.wild}), func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Match calls a handler for every key matching the pattern, in ascending byte order.
// It returns whether all matching keys were visited.
// The handler can continue the process by returning true or abort with false.
// The handler must not modify the index.
func (t *Index) Match(pattern string, handler func(string) bool) (bool, error) {
	if err := t.checkPattern(pattern); err != nil {
		return false, err
	}
	return t.walk(pattern, handler), nil
}

func (t *Index) checkPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("search: %w", ErrEmptyInput)
	}
	var marks int
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == t.wild {
			marks++
		}
	}
	if marks > 1 {
		return fmt.Errorf("search %q: %w", pattern, ErrTooManyWildcards)
	}
	return nil
}

// walk traverses the tree without function recursion. Frames are pushed
// in reverse (hi, eq, emit, lo) so that they pop in key order.
//
// All frames pushed above a frame with prefix length L only ever write
// prefix bytes at positions >= L, so buf[:L] is intact when it pops.
func (t *Index) walk(pattern string, handler func(string) bool) bool {
	if t.root == nilRef {
		return true
	}
	var (
		last  = len(pattern) - 1
		buf   = make([]byte, 0, 64)
		stack = make([]frame, 1, 64)
	)
	stack[0] = frame{ref: t.root}

	for l := len(stack); l > 0; l = len(stack) {
		f := stack[l-1]
		stack = stack[:l-1]
		n := &t.pool.Nodes[f.ref]

		switch f.kind {
		case emitKey:
			buf = append(buf[:f.plen], n.char)
			if !handler(string(buf)) {
				return false
			}
			continue
		case visitMiddle:
			buf = append(buf[:f.plen-1], f.lead)
		}

		var (
			c        = pattern[f.depth]
			wild     = c == t.wild
			nextWild = f.depth < last && pattern[f.depth+1] == t.wild
		)

		if (wild || c > n.char) && n.child[hi] != nilRef {
			stack = append(stack, frame{ref: n.child[hi], depth: f.depth, plen: f.plen})
		}
		if wild || c == n.char {
			if mid := n.child[eq]; mid != nilRef {
				next := frame{ref: mid, plen: f.plen + 1, lead: n.char, kind: visitMiddle}
				switch {
				case f.depth < last:
					// an embedded marker consumes exactly one byte
					next.depth = f.depth + 1
					stack = append(stack, next)
				case wild:
					// a trailing marker holds the cursor for the rest of the chain
					next.depth = f.depth
					stack = append(stack, next)
				}
			}
			if n.end && (f.depth == last || wild || nextWild) {
				stack = append(stack, frame{ref: f.ref, plen: f.plen, kind: emitKey})
			}
		}
		if (wild || c < n.char) && n.child[lo] != nilRef {
			stack = append(stack, frame{ref: n.child[lo], depth: f.depth, plen: f.plen})
		}
	}
	return true
}
