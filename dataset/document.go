// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/mcfscore/mcfscore/flow"
)

// OfficeID decodes from a JSON string or number; numbers keep their
// literal text ("101", not "101.000000"). It always encodes as a string.
type OfficeID string

func (id *OfficeID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = OfficeID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("%w: %s", ErrBadOfficeID, b)
	}
	*id = OfficeID(b)
	return nil
}

func (id OfficeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// LegDoc is one hop of a structured flow.
type LegDoc struct {
	From OfficeID `json:"from_office_id"`
	To   OfficeID `json:"to_office_id"`
}

// FlowDoc is one routed flow of a structured solution.
type FlowDoc struct {
	Source      OfficeID `json:"src_office_id"`
	Destination OfficeID `json:"dst_office_id"`
	Volume      float64  `json:"avg_day_polybox_qty"`
	Legs        []LegDoc `json:"legs"`
}

// Document is the structured solution format.
type Document struct {
	Flows []FlowDoc `json:"flows"`
}

// DecodeDocument reads a structured solution.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decode solution document: %w", err)
	}
	return &doc, nil
}

// NewDocument renders a flow set in structured form.
func NewDocument(s flow.Set) *Document {
	doc := &Document{Flows: make([]FlowDoc, 0, s.Len())}
	for _, f := range s.All() {
		fd := FlowDoc{
			Source:      OfficeID(f.Source()),
			Destination: OfficeID(f.Destination()),
			Volume:      f.Volume(),
		}
		for _, h := range f.Hops() {
			fd.Legs = append(fd.Legs, LegDoc{From: OfficeID(h.From), To: OfficeID(h.To)})
		}
		doc.Flows = append(doc.Flows, fd)
	}
	return doc
}

// Set converts the document into a flow set. The path of each flow is the
// first leg's origin followed by every leg's destination; it must start at
// the flow's source and end at its destination. Any bad flow rejects the
// whole document with a *flow.PathError naming its index.
func (d *Document) Set() (flow.Set, error) {
	flows := make([]flow.Flow, 0, len(d.Flows))
	for i, fd := range d.Flows {
		f, err := fd.flow()
		if err != nil {
			return flow.Set{}, fmt.Errorf("dataset: flow %d: %w", i, err)
		}
		flows = append(flows, f)
	}
	return flow.NewSet(flows...), nil
}

func (fd FlowDoc) flow() (flow.Flow, error) {
	src, dst := string(fd.Source), string(fd.Destination)
	hops := make([]flow.Hop, len(fd.Legs))
	for i, l := range fd.Legs {
		hops[i] = flow.Hop{From: string(l.From), To: string(l.To)}
	}
	path, err := flow.PathFromHops(hops)
	if err != nil {
		return flow.Flow{}, &flow.PathError{Source: src, Destination: dst, Err: err}
	}
	return flow.New(src, dst, fd.Volume, path)
}
