package constant

import "testing"

func TestCanTransition(t *testing.T) {
	all := []CouponStatus{
		CouponStatusNotVerified,
		CouponStatusApproved,
		CouponStatusRejected,
		CouponStatusSold,
		CouponStatusExpired,
	}
	allowed := map[[2]CouponStatus]bool{
		{CouponStatusNotVerified, CouponStatusApproved}: true,
		{CouponStatusNotVerified, CouponStatusRejected}: true,
		{CouponStatusNotVerified, CouponStatusExpired}:  true,
		{CouponStatusApproved, CouponStatusApproved}:    true,
		{CouponStatusApproved, CouponStatusRejected}:    true,
		{CouponStatusApproved, CouponStatusSold}:        true,
		{CouponStatusApproved, CouponStatusExpired}:     true,
		{CouponStatusRejected, CouponStatusApproved}:    true,
		{CouponStatusRejected, CouponStatusRejected}:    true,
		{CouponStatusRejected, CouponStatusExpired}:     true,
		{CouponStatusSold, CouponStatusExpired}:         true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]CouponStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition("pending", CouponStatusApproved) {
		t.Fatal("unknown source status must not transition")
	}
	if CanTransition(CouponStatusApproved, "pending") {
		t.Fatal("unknown target status must not be reachable")
	}
}

func TestCouponStatus_Valid(t *testing.T) {
	for _, s := range []CouponStatus{CouponStatusNotVerified, CouponStatusApproved, CouponStatusRejected, CouponStatusSold, CouponStatusExpired} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if CouponStatus("Approved").Valid() {
		t.Error("status values are case-sensitive")
	}
}

func TestCouponStatus_IsReviewStatus(t *testing.T) {
	tests := map[CouponStatus]bool{
		CouponStatusApproved:    true,
		CouponStatusRejected:    true,
		CouponStatusNotVerified: false,
		CouponStatusSold:        false,
		CouponStatusExpired:     false,
		"":                      false,
	}
	for s, want := range tests {
		if got := s.IsReviewStatus(); got != want {
			t.Errorf("IsReviewStatus(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestErrorTablesComplete(t *testing.T) {
	seen := map[string]ErrorType{}
	for typ := range ErrorTypeMessage {
		if _, ok := ErrorTypeHTTPCode[typ]; !ok {
			t.Errorf("error type %d has no HTTP code", typ)
		}
		code, ok := ErrorTypeCode[typ]
		if !ok {
			t.Errorf("error type %d has no code", typ)
			continue
		}
		if other, dup := seen[code]; dup {
			t.Errorf("code %s shared by %d and %d", code, other, typ)
		}
		seen[code] = typ
	}
}
