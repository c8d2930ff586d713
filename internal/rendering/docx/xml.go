package docx

import (
	"encoding/xml"
	"fmt"
)

const (
	nsMain     = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackRels = "http://schemas.openxmlformats.org/package/2006/relationships"

	relHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"

	// bulletNumID is the numbering instance defined in numbering.xml.
	bulletNumID = 1

	// A4 in twips.
	pageWidth  = 11906
	pageHeight = 16838
)

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	Section    xmlSectPr      `xml:"w:sectPr"`
}

type xmlParagraph struct {
	Props   *xmlParaProps `xml:"w:pPr,omitempty"`
	Content []any
}

// Child order follows the CT_PPr sequence.
type xmlParaProps struct {
	Style    *xmlVal     `xml:"w:pStyle,omitempty"`
	KeepNext *struct{}   `xml:"w:keepNext,omitempty"`
	NumPr    *xmlNumPr   `xml:"w:numPr,omitempty"`
	Border   *xmlBorders `xml:"w:pBdr,omitempty"`
	Spacing  *xmlSpacing `xml:"w:spacing,omitempty"`
	Justify  *xmlVal     `xml:"w:jc,omitempty"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlNumPr struct {
	Level xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlBorders struct {
	Bottom xmlBorder `xml:"w:bottom"`
}

type xmlBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xmlSpacing struct {
	Before int `xml:"w:before,attr,omitempty"`
	After  int `xml:"w:after,attr,omitempty"`
}

type xmlRun struct {
	XMLName xml.Name     `xml:"w:r"`
	Props   *xmlRunProps `xml:"w:rPr,omitempty"`
	Text    xmlText      `xml:"w:t"`
}

// Child order follows the CT_RPr sequence.
type xmlRunProps struct {
	Bold      *struct{} `xml:"w:b,omitempty"`
	Italic    *struct{} `xml:"w:i,omitempty"`
	Color     *xmlVal   `xml:"w:color,omitempty"`
	Size      *xmlVal   `xml:"w:sz,omitempty"`
	SizeCS    *xmlVal   `xml:"w:szCs,omitempty"`
	Underline *xmlVal   `xml:"w:u,omitempty"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type xmlHyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	Runs    []xmlRun `xml:"w:r"`
}

type xmlSectPr struct {
	PageSize xmlPageSize `xml:"w:pgSz"`
	Margins  xmlMargins  `xml:"w:pgMar"`
}

type xmlPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlMargins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// linkTable assigns one relationship id per distinct hyperlink URL.
type linkTable struct {
	ids  map[string]string
	rels []xmlRelationship
}

// The first ids are taken by the styles and numbering parts.
const firstLinkRel = 3

func newLinkTable() *linkTable {
	return &linkTable{ids: make(map[string]string)}
}

func (t *linkTable) id(url string) string {
	if id, ok := t.ids[url]; ok {
		return id
	}
	id := fmt.Sprintf("rId%d", firstLinkRel+len(t.rels))
	t.ids[url] = id
	t.rels = append(t.rels, xmlRelationship{ID: id, Type: relHyperlink, Target: url, TargetMode: "External"})
	return id
}

// documentRels returns the relationships of word/document.xml.
func (t *linkTable) documentRels() xmlRelationships {
	rels := []xmlRelationship{
		{ID: "rId1", Type: relStyles, Target: "styles.xml"},
		{ID: "rId2", Type: relNumbering, Target: "numbering.xml"},
	}
	return xmlRelationships{Xmlns: nsPackRels, Relationships: append(rels, t.rels...)}
}

// toXML converts the paragraph tree, registering hyperlink targets in links.
func (d *Document) toXML(links *linkTable) xmlDocument {
	out := xmlDocument{W: nsMain, R: nsRel}
	for _, p := range d.Paragraphs {
		out.Body.Paragraphs = append(out.Body.Paragraphs, paragraphXML(p, links))
	}
	m := d.Margin
	out.Body.Section = xmlSectPr{
		PageSize: xmlPageSize{W: pageWidth, H: pageHeight},
		Margins:  xmlMargins{Top: m, Right: m, Bottom: m, Left: m, Header: 708, Footer: 708},
	}
	return out
}

func paragraphXML(p Paragraph, links *linkTable) xmlParagraph {
	props := &xmlParaProps{}
	empty := true
	if p.Style != "" {
		props.Style = &xmlVal{Val: p.Style}
		empty = false
	}
	if p.KeepNext {
		props.KeepNext = &struct{}{}
		empty = false
	}
	if p.Bullet {
		props.NumPr = &xmlNumPr{Level: xmlVal{Val: "0"}, NumID: xmlVal{Val: fmt.Sprint(bulletNumID)}}
		empty = false
	}
	if p.BottomBorder {
		props.Border = &xmlBorders{Bottom: xmlBorder{Val: "single", Size: 6, Space: 1, Color: "000000"}}
		empty = false
	}
	if p.SpacingBefore > 0 || p.SpacingAfter > 0 {
		props.Spacing = &xmlSpacing{Before: p.SpacingBefore, After: p.SpacingAfter}
		empty = false
	}
	if p.Align != AlignLeft {
		props.Justify = &xmlVal{Val: string(p.Align)}
		empty = false
	}

	out := xmlParagraph{}
	if !empty {
		out.Props = props
	}
	for _, in := range p.Content {
		switch v := in.(type) {
		case Run:
			out.Content = append(out.Content, runXML(v))
		case Hyperlink:
			h := xmlHyperlink{ID: links.id(v.URL)}
			for _, r := range v.Runs {
				h.Runs = append(h.Runs, runXML(r))
			}
			out.Content = append(out.Content, h)
		}
	}
	return out
}

func runXML(r Run) xmlRun {
	props := &xmlRunProps{}
	empty := true
	if r.Bold {
		props.Bold = &struct{}{}
		empty = false
	}
	if r.Italic {
		props.Italic = &struct{}{}
		empty = false
	}
	if r.Color != "" {
		props.Color = &xmlVal{Val: r.Color}
		empty = false
	}
	if r.Size > 0 {
		size := fmt.Sprint(r.Size)
		props.Size = &xmlVal{Val: size}
		props.SizeCS = &xmlVal{Val: size}
		empty = false
	}
	if r.Underline {
		props.Underline = &xmlVal{Val: "single"}
		empty = false
	}

	out := xmlRun{Text: xmlText{Space: "preserve", Value: r.Text}}
	if !empty {
		out.Props = props
	}
	return out
}
