package srcast

// NewNode creates a detached node of the given kind spanning [start, end).
func NewNode(kind Kind, start, end int) *Node {
	return &Node{
		Kind:  kind,
		Start: start,
		End:   end,
		Named: true,
	}
}

// NewToken creates a detached anonymous token node, such as "," or "}".
func NewToken(kind Kind, start, end int) *Node {
	return &Node{
		Kind:  kind,
		Start: start,
		End:   end,
	}
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// Attach sets File on every node in the subtree rooted at root.
func Attach(root *Node, file *SourceFile) {
	for node := range Flatten(root) {
		node.File = file
	}
}
