// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome is the terminal state of a single entry in a resolution pass.
type Outcome string

const (
	// OutcomeSkipped means the entry value is not a reference token.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeRemote means the value service answered and the value was
	// converted.
	OutcomeRemote Outcome = "remote"

	// OutcomeFallback means the remote call failed and the local default
	// store supplied the value.
	OutcomeFallback Outcome = "fallback"

	// OutcomeUnresolved means neither source produced a value; the original
	// token text stays in effect.
	OutcomeUnresolved Outcome = "unresolved"
)

// Resolution is the result of driving one [RawEntry] through the pipeline.
type Resolution struct {
	Entry   RawEntry
	Token   ReferenceToken
	Outcome Outcome

	// Value is set for OutcomeRemote and OutcomeFallback.
	Value TypedValue

	// Cause carries the remote failure for OutcomeFallback and
	// OutcomeUnresolved, or the parse error for a malformed token.
	Cause error

	// Degraded is true when the remote value had to be kept as text because
	// it did not fit its declared type.
	Degraded bool
}

// Resolved reports whether the entry produced an override.
func (r Resolution) Resolved() bool {
	return r.Outcome == OutcomeRemote || r.Outcome == OutcomeFallback
}

// PassSummary counts the outcomes of a full resolution pass.
type PassSummary struct {
	PassID     string
	Scanned    int
	Tokens     int
	Malformed  int
	Remote     int
	Fallback   int
	Unresolved int
	Degraded   int
}

// Add records r in the summary.
func (s *PassSummary) Add(r Resolution) {
	s.Scanned++

	switch r.Outcome {
	case OutcomeSkipped:
		if r.Cause != nil {
			s.Malformed++
		}
		return
	case OutcomeRemote:
		s.Remote++
	case OutcomeFallback:
		s.Fallback++
	case OutcomeUnresolved:
		s.Unresolved++
	}

	s.Tokens++
	if r.Degraded {
		s.Degraded++
	}
}
