// Package pnml decodes PNML (Petri Net Markup Language) documents into
// petri.Net models. Elements are matched by local name, so documents
// with and without an XML namespace decode identically, and places,
// transitions, and arcs are discovered on the net element and inside
// arbitrarily nested pages.
package pnml

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pflow-xyz/go-pnml/petri"
)

type document struct {
	Nets []netElement `xml:"net"`
}

type netElement struct {
	Pages       []pageElement       `xml:"page"`
	Places      []placeElement      `xml:"place"`
	Transitions []transitionElement `xml:"transition"`
	Arcs        []arcElement        `xml:"arc"`
}

type pageElement struct {
	Pages       []pageElement       `xml:"page"`
	Places      []placeElement      `xml:"place"`
	Transitions []transitionElement `xml:"transition"`
	Arcs        []arcElement        `xml:"arc"`
}

type placeElement struct {
	ID             string `xml:"id,attr"`
	InitialMarking *struct {
		Text string `xml:"text"`
	} `xml:"initialMarking"`
}

type transitionElement struct {
	ID string `xml:"id,attr"`
}

type arcElement struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// Loader reads PNML documents into net models. The logger reports
// non-fatal findings such as duplicate element ids.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// FromXML parses a PNML document from bytes without logging.
func FromXML(data []byte) (*petri.Net, error) {
	return NewLoader(nil).Parse(data)
}

// LoadFile reads and parses a PNML file. Read and parse failures are
// fatal and name the file path; no net is returned on failure.
func (l *Loader) LoadFile(path string) (*petri.Net, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pnml %s: %w", path, err)
	}
	net, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse pnml %s: %w", path, err)
	}
	return net, nil
}

// Parse decodes a PNML document and returns a fully committed net:
// preset/postset lists, the identifier registry, and the incidence
// matrix are all current on the returned value.
//
// Duplicate place or transition ids overwrite the earlier entry, the
// same last-write-wins semantics as petri.Net; each duplicate is
// logged at warn level.
func (l *Loader) Parse(data []byte) (*petri.Net, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid XML: %w", err)
	}

	net := petri.NewNet()
	for _, n := range doc.Nets {
		l.addNet(net, n)
	}

	net.BuildRelationships()
	return net, nil
}

func (l *Loader) addNet(net *petri.Net, n netElement) {
	l.addElements(net, n.Places, n.Transitions, n.Arcs)
	for _, page := range n.Pages {
		l.addPage(net, page)
	}
}

func (l *Loader) addPage(net *petri.Net, page pageElement) {
	l.addElements(net, page.Places, page.Transitions, page.Arcs)
	for _, sub := range page.Pages {
		l.addPage(net, sub)
	}
}

func (l *Loader) addElements(net *petri.Net, places []placeElement, transitions []transitionElement, arcs []arcElement) {
	for _, p := range places {
		if _, seen := net.Places[p.ID]; seen {
			l.log.Warn("duplicate place id, keeping last definition", zap.String("id", p.ID))
		}
		net.AddPlace(p.ID, initialTokens(p))
	}
	for _, t := range transitions {
		if _, seen := net.Transitions[t.ID]; seen {
			l.log.Warn("duplicate transition id, keeping last definition", zap.String("id", t.ID))
		}
		net.AddTransition(t.ID)
	}
	for _, a := range arcs {
		net.AddArc(a.ID, a.Source, a.Target)
	}
}

// initialTokens extracts the initial marking of a place. A missing
// initialMarking element, empty text, a non-numeric literal, or a
// negative value all default to 0 tokens rather than failing.
func initialTokens(p placeElement) int {
	if p.InitialMarking == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.InitialMarking.Text))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
