// Package pagexml reads and writes the subset of the PRIMA Page
// Content schema that the toolkit operates on: text and table regions,
// text lines with baselines and polygons, words, glyphs, text
// equivalences and the page-level reading order. Attributes and child
// elements outside this subset are carried through a round trip
// verbatim so saving a document never strips data the operations did
// not touch.
package pagexml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Namespace is the PRIMA Page Content namespace prefix shared by all
// schema versions (the version date suffix varies per file).
const Namespace = "http://schema.primaresearch.org/PAGE/gts/pagecontent/"

// Element names used for identifier prefixes and reading order work.
const (
	ElemTextRegion  = "TextRegion"
	ElemTableRegion = "TableRegion"
	ElemTableCell   = "TableCell"
	ElemTextLine    = "TextLine"
	ElemWord        = "Word"
	ElemGlyph       = "Glyph"
)

// RawElement preserves an element the schema does not model. Its
// name, attributes and verbatim inner XML survive a round trip
// untouched.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",innerxml"`
}

// PcGts is the document root.
type PcGts struct {
	XMLName  xml.Name   `xml:"PcGts"`
	Xmlns    string     `xml:"xmlns,attr"`
	PcGtsID  string     `xml:"pcGtsId,attr,omitempty"`
	Attrs    []xml.Attr `xml:",any,attr"`
	Metadata *Metadata  `xml:"Metadata,omitempty"`
	Page     Page       `xml:"Page"`
}

// Metadata carries the bookkeeping header of a PAGE file.
type Metadata struct {
	Creator    string       `xml:"Creator,omitempty"`
	Created    string       `xml:"Created,omitempty"`
	LastChange string       `xml:"LastChange,omitempty"`
	Comments   string       `xml:"Comments,omitempty"`
	Extra      []RawElement `xml:",any"`
}

// Page holds the page dimensions, the optional reading order and the
// regions in document order. Regions are collected through the ",any"
// rule so that interleaved TextRegion and TableRegion elements keep
// their relative position.
type Page struct {
	ImageFilename string        `xml:"imageFilename,attr"`
	ImageWidth    int           `xml:"imageWidth,attr"`
	ImageHeight   int           `xml:"imageHeight,attr"`
	Attrs         []xml.Attr    `xml:",any,attr"`
	ReadingOrder  *ReadingOrder `xml:"ReadingOrder"`
	Regions       []*Region     `xml:",any"`
}

// ReadingOrder references regions in their intended reading sequence.
type ReadingOrder struct {
	Groups []*OrderedGroup `xml:"OrderedGroup"`
}

// OrderedGroup is an ordered list of region references.
type OrderedGroup struct {
	ID      string              `xml:"id,attr,omitempty"`
	Caption string              `xml:"caption,attr,omitempty"`
	Refs    []*RegionRefIndexed `xml:"RegionRefIndexed"`
}

// RegionRefIndexed points at a region by id with an explicit position.
type RegionRefIndexed struct {
	Index     int    `xml:"index,attr"`
	RegionRef string `xml:"regionRef,attr"`
}

// Region models TextRegion, TableRegion and any other region-like page
// child; XMLName records which element it was parsed from. Unmodeled
// children such as TextStyle land in Extra.
type Region struct {
	XMLName   xml.Name
	ID        string       `xml:"id,attr,omitempty"`
	Type      string       `xml:"type,attr,omitempty"`
	Custom    string       `xml:"custom,attr,omitempty"`
	Attrs     []xml.Attr   `xml:",any,attr"`
	Coords    *Coords      `xml:"Coords"`
	TextLines []*TextLine  `xml:"TextLine"`
	Cells     []*Region    `xml:"TableCell"`
	TextEquiv *TextEquiv   `xml:"TextEquiv"`
	Extra     []RawElement `xml:",any"`
}

// IsTextRegion reports whether the region is a TextRegion.
func (r *Region) IsTextRegion() bool { return r.XMLName.Local == ElemTextRegion }

// IsTableRegion reports whether the region is a TableRegion.
func (r *Region) IsTableRegion() bool { return r.XMLName.Local == ElemTableRegion }

// TextLine is one transcribed line with its boundary polygon, baseline
// and optional word/glyph breakdown.
type TextLine struct {
	ID        string       `xml:"id,attr,omitempty"`
	Custom    string       `xml:"custom,attr,omitempty"`
	Attrs     []xml.Attr   `xml:",any,attr"`
	Coords    *Coords      `xml:"Coords"`
	Baseline  *Baseline    `xml:"Baseline"`
	Words     []*Word      `xml:"Word"`
	TextEquiv *TextEquiv   `xml:"TextEquiv"`
	Extra     []RawElement `xml:",any"`
}

// Word is a word-level subdivision of a line.
type Word struct {
	ID        string       `xml:"id,attr,omitempty"`
	Attrs     []xml.Attr   `xml:",any,attr"`
	Coords    *Coords      `xml:"Coords"`
	Glyphs    []*Glyph     `xml:"Glyph"`
	TextEquiv *TextEquiv   `xml:"TextEquiv"`
	Extra     []RawElement `xml:",any"`
}

// Glyph is a single character shape.
type Glyph struct {
	ID        string       `xml:"id,attr,omitempty"`
	Attrs     []xml.Attr   `xml:",any,attr"`
	Coords    *Coords      `xml:"Coords"`
	TextEquiv *TextEquiv   `xml:"TextEquiv"`
	Extra     []RawElement `xml:",any"`
}

// Coords carries a polygon as a "x,y x,y ..." point string.
type Coords struct {
	Points string     `xml:"points,attr"`
	Attrs  []xml.Attr `xml:",any,attr"`
}

// Baseline carries a polyline as a "x,y x,y ..." point string.
type Baseline struct {
	Points string     `xml:"points,attr"`
	Attrs  []xml.Attr `xml:",any,attr"`
}

// TextEquiv holds the transcription of its parent element.
type TextEquiv struct {
	Conf      string     `xml:"conf,attr,omitempty"`
	Attrs     []xml.Attr `xml:",any,attr"`
	Unicode   string     `xml:"Unicode"`
	PlainText string     `xml:"PlainText,omitempty"`
}

// Parse decodes a PAGE-XML document from r.
func Parse(r io.Reader) (*PcGts, error) {
	var doc PcGts
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding PAGE XML: %w", err)
	}
	if doc.Xmlns == "" {
		doc.Xmlns = doc.XMLName.Space
	}
	if !strings.HasPrefix(doc.Xmlns, Namespace) {
		return nil, fmt.Errorf("not a PAGE document: namespace %q", doc.Xmlns)
	}
	stripElementNamespaces(&doc)
	return &doc, nil
}

// stripElementNamespaces clears the namespace the decoder recorded on
// every element name. The namespace is re-established on output by the
// single xmlns attribute on the root; leaving it on the names would
// make the encoder emit a second, duplicate xmlns per element. Prefix
// declarations captured as attributes are dropped for the same reason,
// the encoder re-declares a prefix for any namespaced attribute it
// writes.
func stripElementNamespaces(doc *PcGts) {
	doc.XMLName = xml.Name{Local: "PcGts"}
	doc.Attrs = cleanAttrs(doc.Attrs)
	if doc.Metadata != nil {
		doc.Metadata.Extra = cleanRawElements(doc.Metadata.Extra)
	}
	doc.Page.Attrs = cleanAttrs(doc.Page.Attrs)
	for _, region := range doc.Page.Regions {
		stripRegionNamespaces(region)
	}
}

func stripRegionNamespaces(r *Region) {
	r.XMLName.Space = ""
	r.Attrs = cleanAttrs(r.Attrs)
	r.Extra = cleanRawElements(r.Extra)
	for _, line := range r.TextLines {
		line.Attrs = cleanAttrs(line.Attrs)
		line.Extra = cleanRawElements(line.Extra)
		for _, word := range line.Words {
			word.Attrs = cleanAttrs(word.Attrs)
			word.Extra = cleanRawElements(word.Extra)
			for _, glyph := range word.Glyphs {
				glyph.Attrs = cleanAttrs(glyph.Attrs)
				glyph.Extra = cleanRawElements(glyph.Extra)
			}
		}
	}
	for _, cell := range r.Cells {
		stripRegionNamespaces(cell)
	}
}

func cleanAttrs(attrs []xml.Attr) []xml.Attr {
	out := attrs[:0]
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cleanRawElements(extra []RawElement) []RawElement {
	for i := range extra {
		extra[i].XMLName.Space = ""
		extra[i].Attrs = cleanAttrs(extra[i].Attrs)
	}
	return extra
}

// ParseFile decodes a PAGE-XML document from disk.
func ParseFile(path string) (*PcGts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Write encodes doc to w with an XML declaration.
func Write(w io.Writer, doc *PcGts) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding PAGE XML: %w", err)
	}
	return enc.Close()
}

// WriteFile encodes doc to path, creating parent directories as
// needed.
func WriteFile(path string, doc *PcGts) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // caller-controlled output path
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// IsPageFile sniffs whether path is an XML file in the PAGE namespace
// without decoding the full document.
func IsPageFile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return false
	}
	f, err := os.Open(path) //nolint:gosec // discovery over user inputs
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local == "PcGts" && strings.HasPrefix(start.Name.Space, Namespace)
		}
	}
}
