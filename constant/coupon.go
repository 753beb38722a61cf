package constant

type CouponStatus string

const (
	CouponStatusNotVerified CouponStatus = "not_verified"
	CouponStatusApproved    CouponStatus = "approved"
	CouponStatusRejected    CouponStatus = "rejected"
	CouponStatusSold        CouponStatus = "sold"
	CouponStatusExpired     CouponStatus = "expired"
)

// ReviewStatuses are the only targets an admin may request.
var ReviewStatuses = []CouponStatus{CouponStatusApproved, CouponStatusRejected}

// couponTransitions lists, per current status, the statuses it may move to.
var couponTransitions = map[CouponStatus][]CouponStatus{
	CouponStatusNotVerified: {CouponStatusApproved, CouponStatusRejected, CouponStatusExpired},
	CouponStatusApproved:    {CouponStatusApproved, CouponStatusRejected, CouponStatusSold, CouponStatusExpired},
	CouponStatusRejected:    {CouponStatusApproved, CouponStatusRejected, CouponStatusExpired},
	CouponStatusSold:        {CouponStatusExpired},
	CouponStatusExpired:     {},
}

func (s CouponStatus) Valid() bool {
	_, ok := couponTransitions[s]
	return ok
}

// IsReviewStatus reports whether s is an admin review outcome.
func (s CouponStatus) IsReviewStatus() bool {
	for _, rs := range ReviewStatuses {
		if s == rs {
			return true
		}
	}
	return false
}

// CanTransition reports whether a coupon in status from may move to status to.
func CanTransition(from, to CouponStatus) bool {
	for _, next := range couponTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
