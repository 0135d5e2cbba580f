// SPDX-License-Identifier: MIT

// Package dataset reads and writes the files around a scoring run.
//
// Reference tables (all CSV with a header row, columns found by name):
//
//	distance_matrix.csv  src,dst,distance,time,price_per_km[,price]
//	offices.csv          office_id,transfer_price,transfer_max   (optional)
//	reqs.csv             src_office_id,dst_office_id,volume
//
// Solutions come in two shapes:
//
//	*.json  {"flows":[{"src_office_id","dst_office_id","avg_day_polybox_qty","legs":[{"from_office_id","to_office_id"}]}]}
//	*.csv   src,dst,volume,path_nodes   with path_nodes like "[101, 500, 202]"
//
// A structured document with a bad flow is rejected as a whole; a flat CSV
// row that cannot be parsed is dropped and reported as a RowIssue.
//
// WriteCSV and WriteJSON export an analyzed solution; both exports can be
// fed back through LoadSolution.
//
// Errors:
//
//	ErrMissingFile        – required reference table absent
//	ErrMissingColumn      – CSV header lacks a required column
//	ErrBadNumber          – numeric cell cannot be parsed or is not finite
//	ErrBadPathNodes       – path_nodes cell is not a plain list of ids
//	ErrBadOfficeID        – JSON office id is neither string nor number
//	ErrUnsupportedFormat  – solution file is neither .json nor .csv
package dataset
