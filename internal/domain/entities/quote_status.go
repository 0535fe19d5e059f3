package entities

// QuoteStatus is the position of a submitted quote in its fulfillment lifecycle.
//
// The main line is ordered: pending -> approved -> in_preparation -> coating ->
// curing -> quality_check -> completed. rejected and cancelled sit outside the
// line and are absorbing.
type QuoteStatus string

const (
	QuoteStatusPending       QuoteStatus = "pending"
	QuoteStatusApproved      QuoteStatus = "approved"
	QuoteStatusInPreparation QuoteStatus = "in_preparation"
	QuoteStatusCoating       QuoteStatus = "coating"
	QuoteStatusCuring        QuoteStatus = "curing"
	QuoteStatusQualityCheck  QuoteStatus = "quality_check"
	QuoteStatusCompleted     QuoteStatus = "completed"
	QuoteStatusRejected      QuoteStatus = "rejected"
	QuoteStatusCancelled     QuoteStatus = "cancelled"
)

var quoteLifecycle = []QuoteStatus{
	QuoteStatusPending,
	QuoteStatusApproved,
	QuoteStatusInPreparation,
	QuoteStatusCoating,
	QuoteStatusCuring,
	QuoteStatusQualityCheck,
	QuoteStatusCompleted,
}

// QuoteLifecycle returns the ordered main-line statuses.
func QuoteLifecycle() []QuoteStatus {
	out := make([]QuoteStatus, len(quoteLifecycle))
	copy(out, quoteLifecycle)
	return out
}

// QuoteStatusesWhere lists every known status, main line first, that satisfies keep.
func QuoteStatusesWhere(keep func(QuoteStatus) bool) []QuoteStatus {
	all := append(QuoteLifecycle(), QuoteStatusRejected, QuoteStatusCancelled)
	out := all[:0]
	for _, s := range all {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// Index is the position on the main line, or -1 for rejected, cancelled and unknown values.
func (s QuoteStatus) Index() int {
	for i, st := range quoteLifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

func (s QuoteStatus) Valid() bool {
	return s.Index() >= 0 || s == QuoteStatusRejected || s == QuoteStatusCancelled
}

func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusCompleted || s == QuoteStatusRejected || s == QuoteStatusCancelled
}

// Next is the following main-line status. ok is false at the end of the line or off it.
func (s QuoteStatus) Next() (QuoteStatus, bool) {
	i := s.Index()
	if i < 0 || i == len(quoteLifecycle)-1 {
		return s, false
	}
	return quoteLifecycle[i+1], true
}

// Previous is the preceding main-line status. ok is false at pending or off the line.
func (s QuoteStatus) Previous() (QuoteStatus, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return quoteLifecycle[i-1], true
}

// IsCancellable reports whether the owner may still cancel the quote.
func (s QuoteStatus) IsCancellable() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusInPreparation:
		return true
	}
	return false
}

// EditablePredicate decides whether the owner may change quote content in a status.
type EditablePredicate func(QuoteStatus) bool

// EditableStrict only lets owners edit quotes nobody has acted on yet.
func EditableStrict(s QuoteStatus) bool {
	return s == QuoteStatusPending
}

// EditableUnchecked never blocks content edits. It reproduces the edit page of
// the web client, which did not look at the status at all.
func EditableUnchecked(QuoteStatus) bool {
	return true
}

const (
	EditPolicyStrict    = "strict"
	EditPolicyUnchecked = "unchecked"
)

// EditablePolicy resolves a configured policy name. Unknown names fall back to strict.
func EditablePolicy(name string) EditablePredicate {
	if name == EditPolicyUnchecked {
		return EditableUnchecked
	}
	return EditableStrict
}
