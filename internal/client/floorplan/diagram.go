package floorplan

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// boothIDPrefix marks diagram groups that represent booths. A group with
// id="booth-7" maps to booth number "7".
const boothIDPrefix = "booth-"

// Diagram is an authored vector floor plan reduced to its click targets:
// the element ids of booth groups and the booth numbers they embed.
type Diagram struct {
	targets map[string]string
}

// ParseDiagram scans an SVG document once and collects every element whose
// id carries an embedded booth number. Nested groups are handled; elements
// without a booth id are ignored.
func ParseDiagram(r io.Reader) (*Diagram, error) {
	targets := make(map[string]string)
	decoder := xml.NewDecoder(r)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed diagram: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local != "id" {
				continue
			}
			if number, ok := boothNumberFromID(attr.Value); ok {
				targets[attr.Value] = number
			}
		}
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("diagram contains no booth groups")
	}
	return &Diagram{targets: targets}, nil
}

// ResolveClickTarget maps a clicked element id to the booth number it
// embeds. Pure lookup; binding and unbinding of real click handlers is the
// hosting view's concern.
func (d *Diagram) ResolveClickTarget(elementID string) (string, bool) {
	number, ok := d.targets[elementID]
	return number, ok
}

// Targets returns the number of booth click targets in the diagram.
func (d *Diagram) Targets() int {
	return len(d.targets)
}

func boothNumberFromID(id string) (string, bool) {
	if !strings.HasPrefix(id, boothIDPrefix) {
		return "", false
	}
	number := strings.TrimPrefix(id, boothIDPrefix)
	if number == "" {
		return "", false
	}
	return number, true
}
