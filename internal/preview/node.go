package preview

// Direction is the axis a container stacks its children along.
type Direction int

const (
	Column Direction = iota
	Row
)

// Justify distributes free space along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifySpaceBetween
)

// Align positions children on the cross axis. The zero value stretches
// children to the container's inner cross size.
type Align int

const (
	AlignStretch Align = iota
	AlignStart
	AlignCenter
)

// Edges holds per-side spacing in pixels.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns equal spacing on every side.
func Uniform(v float64) Edges { return Edges{Top: v, Right: v, Bottom: v, Left: v} }

// Symmetric returns vertical spacing for top/bottom and horizontal for left/right.
func Symmetric(vertical, horizontal float64) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (e Edges) horizontal() float64 { return e.Left + e.Right }
func (e Edges) vertical() float64   { return e.Top + e.Bottom }

// Rect is an absolute frame in pixels, origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Border describes a node outline. TopOnly draws a single rule along the
// top edge instead of a full outline.
type Border struct {
	Color   string
	Width   float64
	TopOnly bool
}

// TextStyle controls how a text node is measured and drawn.
type TextStyle struct {
	Size       float64
	Bold       bool
	Color      string
	LineHeight float64 // multiple of Size; 0 means 1.2
}

// LinePitch is the distance between consecutive baselines.
func (s TextStyle) LinePitch() float64 {
	lh := s.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	return s.Size * lh
}

// Line is one wrapped line of a text node.
type Line struct {
	Text  string
	Width float64
}

// Node is an element of the preview layout tree. A node with Text is a
// leaf; otherwise it stacks Children along Direction. Width and Height
// fix the node's size when positive. Frame and Lines are filled by Layout.
type Node struct {
	Name string

	Direction Direction
	Justify   Justify
	Align     Align
	Gap       float64
	Padding   Edges
	Margin    Edges
	Width     float64
	Height    float64
	Grow      float64

	Background string
	Border     Border
	Radius     float64

	Text  string
	Style TextStyle

	Children []*Node

	Frame Rect
	Lines []Line

	measuredW float64
	measuredH float64
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool { return n.Text != "" }

// Find returns the first node in depth-first order with the given name.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant, parents first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
