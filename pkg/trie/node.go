package trie

// Node is one branching point of the trie.
type Node struct {
	children []*Node // one slot per alphabet letter, indexed by letter - 'a'
	terminal bool    // a stored word ends exactly here
}

// newNode creates an empty node with size child slots.
func newNode(size int) *Node {
	return &Node{children: make([]*Node, size)}
}

// index maps a letter to its child slot, reporting false when the letter is
// outside the alphabet of this node.
func (n *Node) index(letter rune) (int, bool) {
	i := int(letter - 'a')
	if letter < 'a' || i >= len(n.children) {
		return 0, false
	}
	return i, true
}

// Size returns the number of child slots, which is the alphabet size.
func (n *Node) Size() int {
	return len(n.children)
}

// HasChild reports whether letter is in the alphabet and a child exists for it.
func (n *Node) HasChild(letter rune) bool {
	return n.GetChild(letter) != nil
}

// GetChild returns the child for letter, or nil.
// A letter outside the alphabet never has a child, so it also returns nil.
func (n *Node) GetChild(letter rune) *Node {
	i, ok := n.index(letter)
	if !ok {
		return nil
	}
	return n.children[i]
}

// SetChild installs child in the slot for letter, replacing whatever was there.
// It is the only validating operation: letters outside the alphabet return an
// error matching ErrInvalidCharacter and leave the node unchanged.
func (n *Node) SetChild(letter rune, child *Node) error {
	i, ok := n.index(letter)
	if !ok {
		return &InvalidCharacterError{Char: letter, Offset: -1}
	}
	n.children[i] = child
	return nil
}

func (n *Node) IsTerminalWord() bool {
	return n.terminal
}

func (n *Node) SetTerminalWord(terminal bool) {
	n.terminal = terminal
}

// IsLeaf checks if the node has no children.
func (n *Node) IsLeaf() bool {
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}

// ForEachChild applies f to each non-nil child in ascending letter order.
// will return the original node n
func (n *Node) ForEachChild(f func(letter rune, child *Node)) *Node {
	for i, child := range n.children {
		if child != nil {
			f('a'+rune(i), child)
		}
	}
	return n
}
