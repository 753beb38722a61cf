package expiry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/coupon-marketplace/application/expiry"
	"github.com/muhammadheryan/coupon-marketplace/constant"
	couponmocks "github.com/muhammadheryan/coupon-marketplace/mocks/repository/coupon"
	"github.com/muhammadheryan/coupon-marketplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func couponAt(id string, status constant.CouponStatus, expire time.Time) model.CouponEntity {
	return model.CouponEntity{CouponID: id, Status: status, ExpireDate: expire}
}

func ids(coupons []model.CouponEntity) []string {
	out := make([]string, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, c.CouponID)
	}
	return out
}

func TestDue(t *testing.T) {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		snapshot []model.CouponEntity
		want     []string
	}{
		{
			name: "every non-expired status past its date is due",
			snapshot: []model.CouponEntity{
				couponAt("nv", constant.CouponStatusNotVerified, past),
				couponAt("ap", constant.CouponStatusApproved, past),
				couponAt("rj", constant.CouponStatusRejected, past),
				couponAt("sd", constant.CouponStatusSold, past),
			},
			want: []string{"nv", "ap", "rj", "sd"},
		},
		{
			name: "future coupons are never due",
			snapshot: []model.CouponEntity{
				couponAt("ap", constant.CouponStatusApproved, future),
				couponAt("nv", constant.CouponStatusNotVerified, future),
			},
			want: []string{},
		},
		{
			name: "already expired coupons are not matched again",
			snapshot: []model.CouponEntity{
				couponAt("ex", constant.CouponStatusExpired, past),
				couponAt("ap", constant.CouponStatusApproved, past),
			},
			want: []string{"ap"},
		},
		{
			name:     "expire date equal to now is not strictly before",
			snapshot: []model.CouponEntity{couponAt("eq", constant.CouponStatusApproved, now)},
			want:     []string{},
		},
		{
			name:     "empty snapshot",
			snapshot: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(expiry.Due(now, tt.snapshot)))
		})
	}
}

func TestDue_Idempotent(t *testing.T) {
	snapshot := []model.CouponEntity{
		couponAt("a", constant.CouponStatusApproved, now.Add(-time.Minute)),
		couponAt("b", constant.CouponStatusNotVerified, now.Add(time.Minute)),
	}

	first := expiry.Due(now, snapshot)
	for i := range snapshot {
		for _, d := range first {
			if snapshot[i].CouponID == d.CouponID {
				snapshot[i].Status = constant.CouponStatusExpired
			}
		}
	}

	assert.Empty(t, expiry.Due(now, snapshot))
	assert.Equal(t, constant.CouponStatusNotVerified, snapshot[1].Status)
}

func TestJob_Sweep(t *testing.T) {
	past := now.Add(-time.Hour)

	tests := []struct {
		name     string
		mockCall func(repo *couponmocks.CouponRepository)
		want     int
		wantErr  bool
	}{
		{
			name: "success: approved coupon past expiry becomes expired",
			mockCall: func(repo *couponmocks.CouponRepository) {
				repo.On("ListDue", mock.Anything, now).Return([]model.CouponEntity{
					couponAt("c1", constant.CouponStatusApproved, past),
					couponAt("c2", constant.CouponStatusNotVerified, past),
				}, nil).Once()
				repo.On("MarkExpired", mock.Anything, "c1", now).Return(true, nil).Once()
				repo.On("MarkExpired", mock.Anything, "c2", now).Return(true, nil).Once()
			},
			want: 2,
		},
		{
			name: "success: concurrent writer already expired the row",
			mockCall: func(repo *couponmocks.CouponRepository) {
				repo.On("ListDue", mock.Anything, now).Return([]model.CouponEntity{
					couponAt("c1", constant.CouponStatusApproved, past),
				}, nil).Once()
				repo.On("MarkExpired", mock.Anything, "c1", now).Return(false, nil).Once()
			},
			want: 0,
		},
		{
			name: "success: nothing due",
			mockCall: func(repo *couponmocks.CouponRepository) {
				repo.On("ListDue", mock.Anything, now).Return([]model.CouponEntity{}, nil).Once()
			},
			want: 0,
		},
		{
			name: "error: one coupon fails, the rest still expire",
			mockCall: func(repo *couponmocks.CouponRepository) {
				repo.On("ListDue", mock.Anything, now).Return([]model.CouponEntity{
					couponAt("c1", constant.CouponStatusApproved, past),
					couponAt("c2", constant.CouponStatusRejected, past),
				}, nil).Once()
				repo.On("MarkExpired", mock.Anything, "c1", now).Return(false, errors.New("deadlock")).Once()
				repo.On("MarkExpired", mock.Anything, "c2", now).Return(true, nil).Once()
			},
			want:    1,
			wantErr: true,
		},
		{
			name: "error: listing fails",
			mockCall: func(repo *couponmocks.CouponRepository) {
				repo.On("ListDue", mock.Anything, now).Return(nil, errors.New("connection refused")).Once()
			},
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := couponmocks.NewCouponRepository(t)
			tt.mockCall(repo)

			job := expiry.NewJob(repo, time.Hour)
			got, err := job.Sweep(context.Background(), now)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJob_StartStop(t *testing.T) {
	repo := couponmocks.NewCouponRepository(t)
	swept := make(chan struct{}, 1)
	repo.On("ListDue", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(mock.Arguments) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return([]model.CouponEntity{}, nil)

	job := expiry.NewJob(repo, time.Hour)
	job.Start(context.Background())
	job.Start(context.Background())

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "expected an immediate sweep on start")
	}

	job.Stop()
	repo.AssertNumberOfCalls(t, "ListDue", 1)
}

func TestJob_StopWithoutStart(t *testing.T) {
	job := expiry.NewJob(couponmocks.NewCouponRepository(t), time.Hour)
	job.Stop()
}
