// Package index models a Doxygen index.xml document.
//
// The index root (<doxygenindex>) holds one <compound> element per
// documented entity. Doxygen is known to emit the same refid more than
// once when several inputs map to one entity; this package only reads
// and reports on the document, the rewrite is done by the dedup engine.
package index

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a document parses but has no root element.
var ErrNoRoot = errors.New("document has no root element")

// Compound is one <compound> entry of the index.
type Compound struct {
	RefID string `json:"refid"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
}

// DuplicateGroup describes a refid that occurs more than once.
type DuplicateGroup struct {
	RefID string `json:"refid"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Index is a parsed index document.
type Index struct {
	doc *etree.Document
}

// ParseFile reads and parses the index document at path.
func ParseFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	ix, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ix, nil
}

// ParseBytes parses an index document from b.
func ParseBytes(b []byte) (*Index, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Index{doc: doc}, nil
}

// Parse parses an index document from r.
func Parse(r io.Reader) (*Index, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Index{doc: doc}, nil
}

// Compounds returns the <compound> children of the root in document
// order. Non-compound children are ignored.
func (ix *Index) Compounds() []Compound {
	var out []Compound
	for _, el := range ix.doc.Root().SelectElements("compound") {
		out = append(out, Compound{
			RefID: el.SelectAttrValue("refid", ""),
			Kind:  el.SelectAttrValue("kind", ""),
			Name:  childText(el, "name"),
		})
	}
	return out
}

// DuplicateGroups returns the refids occurring more than once, ordered
// by first occurrence. Kind and name are taken from the first
// occurrence, which is the one the dedup stylesheet keeps.
func (ix *Index) DuplicateGroups() []DuplicateGroup {
	groups := make(map[string]*DuplicateGroup)
	var order []string
	for _, c := range ix.Compounds() {
		if g, ok := groups[c.RefID]; ok {
			g.Count++
			continue
		}
		groups[c.RefID] = &DuplicateGroup{RefID: c.RefID, Kind: c.Kind, Name: c.Name, Count: 1}
		order = append(order, c.RefID)
	}

	var dups []DuplicateGroup
	for _, refid := range order {
		if g := groups[refid]; g.Count > 1 {
			dups = append(dups, *g)
		}
	}
	return dups
}

func childText(el *etree.Element, name string) string {
	if c := el.SelectElement(name); c != nil {
		return c.Text()
	}
	return ""
}
