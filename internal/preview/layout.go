package preview

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Measurer reports the advance width of a run of text in pixels.
type Measurer interface {
	TextWidth(s string, style TextStyle) float64
}

// Layout computes absolute frames for root and its descendants and wraps
// text nodes through m. A root without a fixed size takes its measured size.
func Layout(root *Node, m Measurer) {
	if root == nil {
		return
	}
	avail := root.Width
	if avail <= 0 {
		avail = math.MaxFloat64
	}
	w, h := measure(root, avail, m)
	place(root, 0, 0, w, h)
}

// measure computes the intrinsic border-box size of n given the width
// available to it, wrapping text along the way.
func measure(n *Node, avail float64, m Measurer) (float64, float64) {
	if n.Width > 0 {
		avail = n.Width
	}
	inner := avail - n.Padding.horizontal()

	var contentW, contentH float64
	switch {
	case n.IsText():
		n.Lines = wrapText(n.Text, inner, n.Style, m)
		for _, line := range n.Lines {
			contentW = math.Max(contentW, line.Width)
		}
		contentH = float64(len(n.Lines)) * n.Style.LinePitch()
	case n.Direction == Row:
		remaining := inner
		for i, child := range n.Children {
			if i > 0 {
				contentW += n.Gap
				remaining -= n.Gap
			}
			cw, ch := measure(child, remaining-child.Margin.horizontal(), m)
			outerW := cw + child.Margin.horizontal()
			contentW += outerW
			remaining -= outerW
			contentH = math.Max(contentH, ch+child.Margin.vertical())
		}
	default:
		for i, child := range n.Children {
			if i > 0 {
				contentH += n.Gap
			}
			cw, ch := measure(child, inner-child.Margin.horizontal(), m)
			contentW = math.Max(contentW, cw+child.Margin.horizontal())
			contentH += ch + child.Margin.vertical()
		}
	}

	w := contentW + n.Padding.horizontal()
	h := contentH + n.Padding.vertical()
	if n.Width > 0 {
		w = n.Width
	}
	if n.Height > 0 {
		h = n.Height
	}
	n.measuredW, n.measuredH = w, h
	return w, h
}

// place assigns n its frame and positions its children inside it.
func place(n *Node, x, y, w, h float64) {
	n.Frame = Rect{X: x, Y: y, W: w, H: h}
	if len(n.Children) == 0 {
		return
	}

	row := n.Direction == Row
	innerX := x + n.Padding.Left
	innerY := y + n.Padding.Top
	innerW := w - n.Padding.horizontal()
	innerH := h - n.Padding.vertical()
	innerMain, innerCross := innerH, innerW
	if row {
		innerMain, innerCross = innerW, innerH
	}

	mains := make([]float64, len(n.Children))
	used := n.Gap * float64(len(n.Children)-1)
	var totalGrow float64
	for i, child := range n.Children {
		if row {
			mains[i] = child.measuredW
			used += child.measuredW + child.Margin.horizontal()
		} else {
			mains[i] = child.measuredH
			used += child.measuredH + child.Margin.vertical()
		}
		totalGrow += child.Grow
	}

	free := innerMain - used
	if free > 0 && totalGrow > 0 {
		for i, child := range n.Children {
			mains[i] += free * child.Grow / totalGrow
		}
		free = 0
	}

	offset, spacing := 0.0, n.Gap
	if free > 0 {
		switch n.Justify {
		case JustifyCenter:
			offset = free / 2
		case JustifySpaceBetween:
			if len(n.Children) > 1 {
				spacing += free / float64(len(n.Children)-1)
			}
		}
	}

	cursor := offset
	for i, child := range n.Children {
		var marginMainStart, marginMainEnd, marginCrossStart, marginCross float64
		var measuredCross, fixedCross float64
		if row {
			marginMainStart, marginMainEnd = child.Margin.Left, child.Margin.Right
			marginCrossStart, marginCross = child.Margin.Top, child.Margin.vertical()
			measuredCross, fixedCross = child.measuredH, child.Height
		} else {
			marginMainStart, marginMainEnd = child.Margin.Top, child.Margin.Bottom
			marginCrossStart, marginCross = child.Margin.Left, child.Margin.horizontal()
			measuredCross, fixedCross = child.measuredW, child.Width
		}

		cross := measuredCross
		crossPos := marginCrossStart
		switch n.Align {
		case AlignStretch:
			if fixedCross <= 0 {
				cross = innerCross - marginCross
			}
		case AlignCenter:
			crossPos = marginCrossStart + (innerCross-marginCross-cross)/2
		}

		cursor += marginMainStart
		if row {
			place(child, innerX+cursor, innerY+crossPos, mains[i], cross)
		} else {
			place(child, innerX+crossPos, innerY+cursor, cross, mains[i])
		}
		cursor += mains[i] + marginMainEnd + spacing
	}
}

// wrapText breaks text greedily at whitespace so that each line fits in
// limit. A word wider than limit is split between runes.
func wrapText(text string, limit float64, style TextStyle, m Measurer) []Line {
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []Line
	var builder strings.Builder
	current := 0.0
	emit := func() {
		content := strings.TrimRightFunc(builder.String(), unicode.IsSpace)
		if content != "" {
			lines = append(lines, Line{Text: content, Width: m.TextWidth(content, style)})
		}
		builder.Reset()
		current = 0
	}
	appendToken := func(token string, width float64) {
		if builder.Len() == 0 && strings.TrimSpace(token) == "" {
			return
		}
		builder.WriteString(token)
		current += width
	}

	for _, token := range tokenize(text) {
		if token == "\n" {
			emit()
			continue
		}
		width := m.TextWidth(token, style)
		isSpace := strings.TrimSpace(token) == ""
		if !isSpace && current > 0 && current+width > limit {
			emit()
		}
		if width <= limit || isSpace {
			appendToken(token, width)
			continue
		}
		for _, chunk := range splitByWidth(token, limit, style, m) {
			chunkWidth := m.TextWidth(chunk, style)
			if current > 0 && current+chunkWidth > limit {
				emit()
			}
			appendToken(chunk, chunkWidth)
		}
	}
	emit()
	return lines
}

// tokenize splits s into alternating runs of whitespace and non-whitespace.
// Explicit newlines become their own "\n" token.
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitByWidth(token string, limit float64, style TextStyle, m Measurer) []string {
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if m.TextWidth(builder.String(), style) > limit && utf8.RuneCountInString(builder.String()) > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
