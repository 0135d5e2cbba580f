// SPDX-License-Identifier: MIT
//
// File: methods_offices.go
// Role: Office lifecycle & queries: AddOffice/HasOffice/SetTransfer/Transfer,
//       Offices/TransferOffices/OfficeCount.
// Determinism:
//   - Offices() and TransferOffices() return IDs sorted lexicographically ascending.
// Concurrency:
//   - Office catalog protected by muOffice.

package core

import (
	"math"
	"sort"
)

// AddOffice inserts an office if missing (idempotent).
//
// Errors:
//   - ErrEmptyOfficeID: if id == "".
//
// Complexity: O(1) amortized.
// Concurrency: write lock on muOffice.
func (n *Network) AddOffice(id string) error {
	if id == "" {
		return ErrEmptyOfficeID
	}
	n.muOffice.Lock()
	defer n.muOffice.Unlock()

	if _, exists := n.offices[id]; !exists {
		n.offices[id] = &Office{ID: id}
	}

	return nil
}

// HasOffice reports whether the office ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (n *Network) HasOffice(id string) bool {
	if id == "" {
		return false
	}
	n.muOffice.RLock()
	defer n.muOffice.RUnlock()
	_, ok := n.offices[id]

	return ok
}

// SetTransfer attaches (or replaces) the transfer record of an office,
// creating the office when it does not exist yet.
//
// Errors:
//   - ErrEmptyOfficeID: if id == "".
//   - *AttributeError: if price or capacity is negative, NaN or infinite.
//
// Complexity: O(1).
// Concurrency: write lock on muOffice.
func (n *Network) SetTransfer(id string, t Transfer) error {
	if id == "" {
		return ErrEmptyOfficeID
	}
	if !validAttribute(t.Price) {
		return &AttributeError{From: id, Name: "transfer price", Value: t.Price}
	}
	if !validAttribute(t.Capacity) {
		return &AttributeError{From: id, Name: "transfer capacity", Value: t.Capacity}
	}

	n.muOffice.Lock()
	defer n.muOffice.Unlock()
	o, ok := n.offices[id]
	if !ok {
		o = &Office{ID: id}
		n.offices[id] = o
	}
	rec := t
	o.Transfer = &rec

	return nil
}

// Transfer returns the transfer record of an office and whether one exists.
// Offices that are unknown or have no record report false.
// Complexity: O(1).
func (n *Network) Transfer(id string) (Transfer, bool) {
	n.muOffice.RLock()
	defer n.muOffice.RUnlock()
	o, ok := n.offices[id]
	if !ok || o.Transfer == nil {
		return Transfer{}, false
	}

	return *o.Transfer, true
}

// Office returns a copy of the office with the given ID.
//
// Errors:
//   - ErrOfficeNotFound: if the office does not exist.
func (n *Network) Office(id string) (Office, error) {
	n.muOffice.RLock()
	defer n.muOffice.RUnlock()
	o, ok := n.offices[id]
	if !ok {
		return Office{}, ErrOfficeNotFound
	}
	out := Office{ID: o.ID}
	if o.Transfer != nil {
		rec := *o.Transfer
		out.Transfer = &rec
	}

	return out, nil
}

// Offices returns all office IDs sorted ascending.
// Complexity: O(V log V).
func (n *Network) Offices() []string {
	n.muOffice.RLock()
	defer n.muOffice.RUnlock()
	ids := make([]string, 0, len(n.offices))
	for id := range n.offices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// TransferOffices returns the IDs of offices holding a transfer record, sorted ascending.
// Complexity: O(V log V).
func (n *Network) TransferOffices() []string {
	n.muOffice.RLock()
	defer n.muOffice.RUnlock()
	ids := make([]string, 0, len(n.offices))
	for id, o := range n.offices {
		if o.Transfer != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// OfficeCount returns the number of offices.
// Complexity: O(1).
func (n *Network) OfficeCount() int {
	n.muOffice.RLock()
	defer n.muOffice.RUnlock()

	return len(n.offices)
}

// validAttribute accepts finite, non-negative values.
func validAttribute(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
