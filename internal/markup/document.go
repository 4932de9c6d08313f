// Package markup holds the in-memory installer source document handed to
// SourceGenerated subscribers before it is serialized.
//
// The types mirror WiX source structure loosely: a Document owns a root Element, and
// Elements carry a name, attributes, child elements and character data. Subscribers edit
// the tree in place. Reading or writing XML text is left to the build driver.
package markup

import "encoding/xml"

// Document is a mutable installer source tree.
type Document struct {
	Root *Element
}

// Element is a single markup element.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Element
	Text     string
}

// NewDocument returns a document whose root element has the given local name and namespace.
func NewDocument(local, space string) *Document {
	return &Document{Root: NewElement(local, space)}
}

// NewElement returns an element without attributes or children.
func NewElement(local, space string) *Element {
	return &Element{Name: xml.Name{Space: space, Local: local}}
}

// AttrValue returns the value of the attribute with the given local name.
func (e *Element) AttrValue(local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute by local name, replacing an existing one in place.
func (e *Element) SetAttr(local, value string) {
	for i := range e.Attr {
		if e.Attr[i].Name.Local == local {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}

// RemoveAttr deletes the attribute with the given local name, reporting whether it existed.
func (e *Element) RemoveAttr(local string) bool {
	for i := range e.Attr {
		if e.Attr[i].Name.Local == local {
			e.Attr = append(e.Attr[:i], e.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// AddChild appends child and returns it.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Find returns the first element (depth-first, e included) with the given local name.
func (e *Element) Find(local string) *Element {
	if e == nil {
		return nil
	}
	if e.Name.Local == local {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(local); found != nil {
			return found
		}
	}
	return nil
}

// Find searches the whole document. A document without a root finds nothing.
func (d *Document) Find(local string) *Element {
	if d == nil {
		return nil
	}
	return d.Root.Find(local)
}
