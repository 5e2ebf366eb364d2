package pom

import (
	"encoding/xml"
	"sort"
	"strings"
)

// Property is a single key/value pair of a project's <properties> block.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered property set. Insertion order is preserved so that
// rendering stays stable across reads.
type Properties []Property

// NewProperties builds a property set from a map, ordered by key.
// Map-based formats carry no ordering of their own.
func NewProperties(m map[string]string) Properties {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make(Properties, 0, len(keys))
	for _, k := range keys {
		props = append(props, Property{Key: k, Value: m[k]})
	}
	return props
}

// Get returns the value stored under key.
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Set replaces the value of key, or appends it when absent.
func (p *Properties) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Property{Key: key, Value: value})
}

// Map returns the properties as a plain map.
func (p Properties) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, prop := range p {
		m[prop.Key] = prop.Value
	}
	return m
}

// MarshalXML renders each property as its own element.
func (p Properties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, prop := range p {
		el := xml.StartElement{Name: xml.Name{Local: prop.Key}}
		if err := e.EncodeElement(prop.Value, el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads child elements in document order.
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var v string
			if err := d.DecodeElement(&v, &t); err != nil {
				return err
			}
			p.Set(t.Name.Local, strings.TrimSpace(v))
		case xml.EndElement:
			return nil
		}
	}
}
