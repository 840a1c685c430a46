// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PageSize is the number of product ids covered by one catalog page.
const PageSize = 50

// PageWindow is an inclusive range of product ids making up one catalog page.
// Pages are computed from the highest product id downwards, so page 0 always
// holds the newest products and appending products never shifts older pages.
//
// From may be negative on the last page. Past the end of the catalog the
// window is empty (From > To) and matches no rows.
type PageWindow struct {
	From int64
	To   int64
}

// NewPageWindow returns the id window of the given 0-based page when the
// highest product id is maxID. Negative pages and pages past the last one
// yield an empty window.
func NewPageWindow(maxID int64, page int) PageWindow {
	p := int64(page)
	if p < 0 || p > maxID/PageSize {
		return PageWindow{From: 1, To: 0}
	}
	to := maxID - p*PageSize
	return PageWindow{From: to - PageSize + 1, To: to}
}

// IsEmpty reports whether no positive id can fall inside the window.
func (w PageWindow) IsEmpty() bool {
	return w.To < 1 || w.From > w.To
}
