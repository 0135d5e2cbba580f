// SPDX-License-Identifier: MIT

// Package api serves solution evaluation over HTTP.
//
// A Handler holds one reference dataset loaded at startup and evaluates
// posted structured solutions against it:
//
//	GET  /api/health
//	POST /api/evaluate?capacity=90&name=run-1   body: structured solution document
//
// Malformed bodies, bad query values and flows whose path does not fit
// their request answer 400. Findings are part of a 200 response, not
// errors.
package api
