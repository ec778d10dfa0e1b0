package tst

// nilRef marks an absent child or an empty root
const nilRef = -1

// child slots of a Node
const (
	lo = iota
	eq
	hi
)

type Node struct {
	child [3]int
	char  byte
	// end is set when a key finishes at this node
	end bool
}

// --- NodePool ---

// NodePool is an arena of nodes. Nodes refer to each other by index,
// so growing the arena never invalidates a link.
type NodePool struct {
	Nodes []Node
}

func NewNodePool(preAlloc int) *NodePool {
	if preAlloc <= 0 {
		preAlloc = 256
	}
	return &NodePool{
		Nodes: make([]Node, 0, preAlloc),
	}
}

// GetNode allocates a leaf node holding c and returns
// its index in the .Nodes slice
func (p *NodePool) GetNode(c byte) int {
	p.Nodes = append(p.Nodes, Node{
		child: [3]int{nilRef, nilRef, nilRef},
		char:  c,
	})
	return len(p.Nodes) - 1
}

func (p *NodePool) Len() int {
	return len(p.Nodes)
}

// Reset forgets about stored nodes (not freeing the memory).
// Every index built on the pool must be discarded as well.
func (p *NodePool) Reset() {
	p.Nodes = p.Nodes[:0]
}
