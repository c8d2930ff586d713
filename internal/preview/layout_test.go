package preview

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune half the font size in width.
type fixedMeasurer struct{}

func (fixedMeasurer) TextWidth(s string, style TextStyle) float64 {
	return float64(utf8.RuneCountInString(s)) * style.Size / 2
}

func box(name string, w, h float64) *Node {
	return &Node{Name: name, Width: w, Height: h}
}

func TestLayout_ColumnStacksWithPaddingAndGap(t *testing.T) {
	root := &Node{Width: 100, Height: 100, Padding: Uniform(10), Gap: 5,
		Children: []*Node{
			{Name: "a", Height: 20},
			{Name: "b", Height: 30},
		}}

	Layout(root, fixedMeasurer{})

	assert.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 100}, root.Frame)
	assert.Equal(t, Rect{X: 10, Y: 10, W: 80, H: 20}, root.Find("a").Frame)
	assert.Equal(t, Rect{X: 10, Y: 35, W: 80, H: 30}, root.Find("b").Frame)
}

func TestLayout_RowSpaceBetween(t *testing.T) {
	root := &Node{Direction: Row, Justify: JustifySpaceBetween, Width: 100, Height: 10,
		Children: []*Node{box("a", 20, 10), box("b", 20, 10), box("c", 20, 10)}}

	Layout(root, fixedMeasurer{})

	assert.Equal(t, 0.0, root.Find("a").Frame.X)
	assert.Equal(t, 40.0, root.Find("b").Frame.X)
	assert.Equal(t, 80.0, root.Find("c").Frame.X)
}

func TestLayout_JustifyCenter(t *testing.T) {
	root := &Node{Justify: JustifyCenter, Width: 50, Height: 100,
		Children: []*Node{box("a", 0, 20)}}

	Layout(root, fixedMeasurer{})

	assert.Equal(t, 40.0, root.Find("a").Frame.Y)
}

func TestLayout_GrowTakesFreeSpace(t *testing.T) {
	root := &Node{Width: 50, Height: 100,
		Children: []*Node{
			box("fixed", 0, 20),
			{Name: "grow", Grow: 1},
		}}

	Layout(root, fixedMeasurer{})

	grow := root.Find("grow").Frame
	assert.Equal(t, 20.0, grow.Y)
	assert.Equal(t, 80.0, grow.H)
}

func TestLayout_AlignCenterOnCrossAxis(t *testing.T) {
	root := &Node{Direction: Row, Align: AlignCenter, Width: 100, Height: 50,
		Children: []*Node{box("a", 10, 10)}}

	Layout(root, fixedMeasurer{})

	assert.Equal(t, 20.0, root.Find("a").Frame.Y)
	assert.Equal(t, 10.0, root.Find("a").Frame.H)
}

func TestLayout_MarginsOffsetSiblings(t *testing.T) {
	root := &Node{Width: 50, Height: 100,
		Children: []*Node{
			{Name: "a", Height: 10, Margin: Edges{Bottom: 15}},
			{Name: "b", Height: 10},
		}}

	Layout(root, fixedMeasurer{})

	assert.Equal(t, 25.0, root.Find("b").Frame.Y)
}

func TestLayout_TextWrapsWithinParentWidth(t *testing.T) {
	label := &Node{Name: "label", Text: "aaaa bbbb cccc", Style: TextStyle{Size: 10, LineHeight: 1}}
	root := &Node{Width: 50, Children: []*Node{label}}

	Layout(root, fixedMeasurer{})

	require.Len(t, label.Lines, 2)
	assert.Equal(t, Line{Text: "aaaa bbbb", Width: 45}, label.Lines[0])
	assert.Equal(t, Line{Text: "cccc", Width: 20}, label.Lines[1])
	assert.Equal(t, 20.0, label.Frame.H)
	assert.Equal(t, 20.0, root.Frame.H)
}

func TestWrapText_SplitsLongWord(t *testing.T) {
	lines := wrapText("abcdefghij", 20, TextStyle{Size: 10}, fixedMeasurer{})

	var texts []string
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, texts)
}

func TestWrapText_HonoursNewlines(t *testing.T) {
	lines := wrapText("one\ntwo", 1000, TextStyle{Size: 10}, fixedMeasurer{})

	require.Len(t, lines, 2)
	assert.Equal(t, "one", lines[0].Text)
	assert.Equal(t, "two", lines[1].Text)
}

func TestLayout_PreviewBandsFillCanvas(t *testing.T) {
	root := BuildLayout(sampleExcerpt(), sampleSite())

	Layout(root, fixedMeasurer{})

	assert.Equal(t, Rect{X: 0, Y: 0, W: Width, H: Height}, root.Frame)

	footer := root.Find("footer").Frame
	assert.InDelta(t, Height-60, footer.Y+footer.H, 0.001)

	domain := root.Find("domain").Frame
	assert.InDelta(t, Width-60, domain.X+domain.W, 0.001)

	title := root.Find("title")
	assert.NotEmpty(t, title.Lines)
	for _, line := range title.Lines {
		assert.LessOrEqual(t, line.Width, float64(Width-120))
	}

	body := root.Find("body").Frame
	header := root.Find("header").Frame
	assert.Greater(t, body.Y, header.Y+header.H)
	assert.Less(t, body.Y+body.H, footer.Y)
}
