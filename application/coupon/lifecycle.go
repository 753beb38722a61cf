package coupon

import (
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/utils/errors"
)

// TransitionSource identifies who is moving a coupon between statuses.
type TransitionSource int

const (
	SourceAdmin TransitionSource = iota
	SourceSweep
	SourceSale
)

var sourceTargets = map[TransitionSource][]constant.CouponStatus{
	SourceAdmin: constant.ReviewStatuses,
	SourceSweep: {constant.CouponStatusExpired},
	SourceSale:  {constant.CouponStatusSold},
}

// ValidateTransition is the single gate for every coupon status change.
// An admin asking for anything other than a review status gets
// ErrInvalidCouponStatus; a target the current status cannot reach gets
// ErrInvalidStatusTransition.
func ValidateTransition(from, to constant.CouponStatus, source TransitionSource) error {
	allowed := false
	for _, target := range sourceTargets[source] {
		if target == to {
			allowed = true
			break
		}
	}
	if !allowed {
		if source == SourceAdmin {
			return errors.SetCustomError(constant.ErrInvalidCouponStatus)
		}
		return errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	if !constant.CanTransition(from, to) {
		return errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}
	return nil
}
