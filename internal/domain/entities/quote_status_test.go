package entities

import "testing"

func TestQuoteStatus_Lifecycle(t *testing.T) {
	s := QuoteStatusPending
	var visited []QuoteStatus
	for {
		visited = append(visited, s)
		next, ok := s.Next()
		if !ok {
			break
		}
		s = next
	}
	if len(visited) != 7 || visited[6] != QuoteStatusCompleted {
		t.Fatalf("unexpected lifecycle walk: %v", visited)
	}

	prev, ok := QuoteStatusCoating.Previous()
	if !ok || prev != QuoteStatusInPreparation {
		t.Fatalf("expected in_preparation, got %s ok=%v", prev, ok)
	}
	if _, ok := QuoteStatusPending.Previous(); ok {
		t.Fatalf("pending has no previous status")
	}
	if _, ok := QuoteStatusRejected.Next(); ok {
		t.Fatalf("rejected is off the main line")
	}
	if QuoteStatusCancelled.Index() != -1 {
		t.Fatalf("cancelled must not have a lifecycle index")
	}
}

func TestQuoteStatus_Valid(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusPending, QuoteStatusQualityCheck, QuoteStatusRejected, QuoteStatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if QuoteStatus("draft").Valid() || QuoteStatus("").Valid() {
		t.Fatalf("unexpected valid status")
	}
	if !QuoteStatusCompleted.IsTerminal() || QuoteStatusCuring.IsTerminal() {
		t.Fatalf("unexpected terminal flags")
	}
}

func TestQuoteStatus_Predicates(t *testing.T) {
	cases := []struct {
		status      QuoteStatus
		cancellable bool
		strict      bool
	}{
		{QuoteStatusPending, true, true},
		{QuoteStatusApproved, true, false},
		{QuoteStatusInPreparation, true, false},
		{QuoteStatusCoating, false, false},
		{QuoteStatusCompleted, false, false},
		{QuoteStatusRejected, false, false},
		{QuoteStatusCancelled, false, false},
	}
	for _, tc := range cases {
		if got := tc.status.IsCancellable(); got != tc.cancellable {
			t.Fatalf("%s cancellable: expected %v got %v", tc.status, tc.cancellable, got)
		}
		if got := EditableStrict(tc.status); got != tc.strict {
			t.Fatalf("%s strict editable: expected %v got %v", tc.status, tc.strict, got)
		}
		if !EditableUnchecked(tc.status) {
			t.Fatalf("%s unchecked editable must be true", tc.status)
		}
	}

	if EditablePolicy("unchecked")(QuoteStatusCuring) != true {
		t.Fatalf("expected unchecked policy")
	}
	if EditablePolicy("bogus")(QuoteStatusCuring) != false {
		t.Fatalf("expected strict fallback")
	}
}

func TestQuoteStatusesWhere(t *testing.T) {
	got := QuoteStatusesWhere(QuoteStatus.IsCancellable)
	want := []QuoteStatus{QuoteStatusPending, QuoteStatusApproved, QuoteStatusInPreparation}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}

	if all := QuoteStatusesWhere(EditableUnchecked); len(all) != 9 || all[8] != QuoteStatusCancelled {
		t.Fatalf("expected every status, got %v", all)
	}
	if len(QuoteLifecycle()) != 7 {
		t.Fatalf("filtering must not touch the lifecycle")
	}
}
