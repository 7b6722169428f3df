package ui

// MountPoint is a region written by exactly one owner.
type MountPoint struct {
	root *Node
}

func NewMountPoint(id string) *MountPoint {
	return &MountPoint{root: El("section").SetAttr("id", id)}
}

func (m *MountPoint) Root() *Node { return m.root }

// Clear detaches every child.
func (m *MountPoint) Clear() {
	for _, c := range m.root.Children {
		c.parent = nil
	}
	m.root.Children = nil
}

func (m *MountPoint) Append(n *Node) { m.root.Append(n) }

func (m *MountPoint) Children() []*Node {
	return append([]*Node(nil), m.root.Children...)
}

func (m *MountPoint) String() string { return m.root.String() }

// Container hosts nodes appended by several independent creators. Each
// creator removes only the nodes it appended.
type Container struct {
	root *Node
}

func NewContainer(id string) *Container {
	return &Container{root: El("div").SetAttr("id", id)}
}

func (c *Container) Root() *Node { return c.root }

func (c *Container) Append(n *Node) { c.root.Append(n) }

// Remove detaches n if it is hosted here.
func (c *Container) Remove(n *Node) bool {
	if n == nil || n.parent != c.root {
		return false
	}
	return n.Remove()
}

func (c *Container) Children() []*Node {
	return append([]*Node(nil), c.root.Children...)
}

func (c *Container) Len() int { return len(c.root.Children) }
