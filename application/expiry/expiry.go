package expiry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/muhammadheryan/coupon-marketplace/application/coupon"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	"github.com/muhammadheryan/coupon-marketplace/model"
	couponrepo "github.com/muhammadheryan/coupon-marketplace/repository/coupon"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	"go.uber.org/zap"
)

const defaultInterval = time.Hour

// Job periodically expires coupons whose expire date has passed.
type Job struct {
	couponRepo couponrepo.CouponRepository
	interval   time.Duration
	now        func() time.Time

	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

// NewJob falls back to defaultInterval for a non-positive interval.
func NewJob(couponRepo couponrepo.CouponRepository, interval time.Duration) *Job {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Job{
		couponRepo: couponRepo,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start runs one sweep right away and then one per interval until ctx is
// cancelled or Stop is called. Calls after the first are no-ops.
func (j *Job) Start(ctx context.Context) {
	j.once.Do(func() {
		ctx, j.cancel = context.WithCancel(ctx)
		go j.run(ctx)
	})
}

// Stop cancels the loop and waits for the sweep in flight to finish.
func (j *Job) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
}

func (j *Job) run(ctx context.Context) {
	defer close(j.done)

	j.tick(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("[ExpiryJob] stopped")
			return
		case <-ticker.C:
			j.tick(ctx)
		}
	}
}

func (j *Job) tick(ctx context.Context) {
	n, err := j.Sweep(ctx, j.now())
	if err != nil {
		logger.Error("[ExpiryJob] sweep", zap.Int("expired", n), zap.String("error", err.Error()))
		return
	}
	if n > 0 {
		logger.Info("[ExpiryJob] sweep", zap.Int("expired", n))
	}
}

// Sweep expires every coupon due at now and returns how many were written.
// A failed coupon does not stop the others; all failures are joined.
func (j *Job) Sweep(ctx context.Context, now time.Time) (int, error) {
	candidates, err := j.couponRepo.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	var (
		expired int
		errs    []error
	)
	for _, c := range Due(now, candidates) {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		ok, err := j.couponRepo.MarkExpired(ctx, c.CouponID, now)
		if err != nil {
			logger.Warn("[ExpiryJob] mark expired", zap.String("coupon_id", c.CouponID), zap.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}
		if ok {
			expired++
		}
	}
	return expired, errors.Join(errs...)
}

// Due selects the coupons of snapshot that the sweep should expire at now.
func Due(now time.Time, snapshot []model.CouponEntity) []model.CouponEntity {
	due := make([]model.CouponEntity, 0, len(snapshot))
	for _, c := range snapshot {
		if !c.IsDue(now) {
			continue
		}
		if coupon.ValidateTransition(c.Status, constant.CouponStatusExpired, coupon.SourceSweep) != nil {
			continue
		}
		due = append(due, c)
	}
	return due
}
