package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/cv-builder/internal/rendering"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/><w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="en-US"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:qFormat/><w:pPr><w:ind w:left="720"/></w:pPr></w:style>
</w:styles>`

const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0">
<w:multiLevelType w:val="hybridMultilevel"/>
<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

type xmlCoreProperties struct {
	XMLName  xml.Name   `xml:"cp:coreProperties"`
	CP       string     `xml:"xmlns:cp,attr"`
	DC       string     `xml:"xmlns:dc,attr"`
	DCTerms  string     `xml:"xmlns:dcterms,attr"`
	XSI      string     `xml:"xmlns:xsi,attr"`
	Title    string     `xml:"dc:title"`
	Creator  string     `xml:"dc:creator"`
	Created  xmlW3CDate `xml:"dcterms:created"`
	Modified xmlW3CDate `xml:"dcterms:modified"`
}

type xmlW3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// Renderer serializes a CV as a .docx package.
type Renderer struct {
	// Now is stamped into the package metadata. Zero means the current time.
	Now time.Time
}

var (
	_ rendering.Renderer     = Renderer{}
	_ rendering.TextRenderer = Renderer{}
)

// Extension returns the file extension of the rendered document.
func (r Renderer) Extension() string {
	return ".docx"
}

// Render builds the document tree and packages it in memory.
func (r Renderer) Render(in rendering.Input) ([]byte, error) {
	doc, err := Build(in)
	if err != nil {
		return nil, err
	}

	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}

	var buf bytes.Buffer
	if err := doc.WritePackage(&buf, in.CV.Contact.Name, now); err != nil {
		return nil, &rendering.RenderError{Message: "failed to write docx package", Cause: err}
	}
	return buf.Bytes(), nil
}

// RenderText returns the visible text of the document, one paragraph per line.
func (r Renderer) RenderText(in rendering.Input) (string, error) {
	doc, err := Build(in)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// WritePackage writes the document as an OOXML zip package to w.
func (d *Document) WritePackage(w io.Writer, author string, now time.Time) error {
	links := newLinkTable()
	document, err := marshalPart(d.toXML(links))
	if err != nil {
		return fmt.Errorf("document.xml: %w", err)
	}
	rels, err := marshalPart(links.documentRels())
	if err != nil {
		return fmt.Errorf("document.xml.rels: %w", err)
	}

	stamp := now.UTC().Format(time.RFC3339)
	core, err := marshalPart(xmlCoreProperties{
		CP:       "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:       "http://purl.org/dc/elements/1.1/",
		DCTerms:  "http://purl.org/dc/terms/",
		XSI:      "http://www.w3.org/2001/XMLSchema-instance",
		Title:    author + " - CV",
		Creator:  author,
		Created:  xmlW3CDate{Type: "dcterms:W3CDTF", Value: stamp},
		Modified: xmlW3CDate{Type: "dcterms:W3CDTF", Value: stamp},
	})
	if err != nil {
		return fmt.Errorf("core.xml: %w", err)
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", document},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/numbering.xml", []byte(numberingXML)},
		{"word/_rels/document.xml.rels", rels},
		{"docProps/core.xml", core},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate, Modified: now})
		if err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}
