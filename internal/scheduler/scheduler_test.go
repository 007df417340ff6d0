package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"

	"github.com/golang/mock/gomock"
)

const (
	testBatchSize    = 10
	testRetryBackoff = time.Minute
)

var testNow = time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)

func newTestWorker(ctrl *gomock.Controller) (*Worker, *MockRepo, *MockExecutor, *audit.MockRecorder) {
	repo := NewMockRepo(ctrl)
	executor := NewMockExecutor(ctrl)
	auditor := audit.NewMockRecorder(ctrl)

	worker := NewWorker(repo, executor, auditor, time.Second, testBatchSize, testRetryBackoff)
	worker.now = func() time.Time { return testNow }

	return worker, repo, executor, auditor
}

func dueSchedule(attempts int) domain.PaymentSchedule {
	return domain.PaymentSchedule{
		ID:          5,
		Owner:       "alice",
		Actor:       "tester",
		Status:      domain.ScheduleScheduled,
		Attempts:    attempts,
		MaxAttempts: 3,
		Payload: domain.CreatePaymentParams{
			FromAccountID:  1,
			Amount:         "100.00",
			Currency:       "USD",
			IdempotencyKey: "4d1d59a4-1f60-4a3e-9a8c-9a2e9a9d8f11",
		},
		ScheduledFor: testNow.Add(-time.Minute),
	}
}

func TestTick(t *testing.T) {
	schedule := dueSchedule(0)
	claimed := schedule
	claimed.Status = domain.ScheduleProcessing

	execErr := errors.New("insufficient balance")

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder)
	}{
		{
			name: "DueScheduleExecutedAndCompleted",
			buildStubs: func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListDue(gomock.Any(), testNow, testBatchSize).
					Times(1).
					Return([]domain.PaymentSchedule{schedule}, nil)

				repo.EXPECT().
					Claim(gomock.Any(), schedule.ID).
					Times(1).
					Return(claimed, nil)

				executor.EXPECT().
					ExecuteSchedule(gomock.Any(), claimed).
					Times(1).
					Return(domain.PaymentResult{Status: domain.PaymentSuccess, LedgerEntryID: 12}, nil)

				repo.EXPECT().
					MarkCompleted(gomock.Any(), schedule.ID, int64(12)).
					Times(1).
					Return(domain.PaymentSchedule{}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), "tester", "PAYMENT_SCHEDULED_EXECUTED", gomock.Any(), gomock.Any()).
					Times(1)
			},
		},
		{
			name: "LostClaimRaceIsSkipped",
			buildStubs: func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListDue(gomock.Any(), testNow, testBatchSize).
					Times(1).
					Return([]domain.PaymentSchedule{schedule}, nil)

				repo.EXPECT().
					Claim(gomock.Any(), schedule.ID).
					Times(1).
					Return(domain.PaymentSchedule{}, domain.ErrScheduleAlreadyClaimed)

				executor.EXPECT().ExecuteSchedule(gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "FailureReschedulesWithLinearBackoff",
			buildStubs: func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListDue(gomock.Any(), testNow, testBatchSize).
					Times(1).
					Return([]domain.PaymentSchedule{schedule}, nil)

				repo.EXPECT().
					Claim(gomock.Any(), schedule.ID).
					Times(1).
					Return(claimed, nil)

				executor.EXPECT().
					ExecuteSchedule(gomock.Any(), claimed).
					Times(1).
					Return(domain.PaymentResult{}, execErr)

				repo.EXPECT().
					Reschedule(gomock.Any(), schedule.ID, 1, execErr.Error(), testNow.Add(testRetryBackoff)).
					Times(1).
					Return(domain.PaymentSchedule{}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), "tester", "PAYMENT_SCHEDULED_FAILED", gomock.Any(), gomock.Any()).
					Times(1)
			},
		},
		{
			name: "SecondFailureBacksOffFurther",
			buildStubs: func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder) {
				once := dueSchedule(1)
				onceClaimed := once
				onceClaimed.Status = domain.ScheduleProcessing

				repo.EXPECT().
					ListDue(gomock.Any(), testNow, testBatchSize).
					Times(1).
					Return([]domain.PaymentSchedule{once}, nil)

				repo.EXPECT().
					Claim(gomock.Any(), once.ID).
					Times(1).
					Return(onceClaimed, nil)

				executor.EXPECT().
					ExecuteSchedule(gomock.Any(), onceClaimed).
					Times(1).
					Return(domain.PaymentResult{}, execErr)

				repo.EXPECT().
					Reschedule(gomock.Any(), once.ID, 2, execErr.Error(), testNow.Add(2*testRetryBackoff)).
					Times(1).
					Return(domain.PaymentSchedule{}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), "tester", "PAYMENT_SCHEDULED_FAILED", gomock.Any(), gomock.Any()).
					Times(1)
			},
		},
		{
			name: "ExhaustedAttemptsParkAsFailed",
			buildStubs: func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder) {
				last := dueSchedule(2)
				lastClaimed := last
				lastClaimed.Status = domain.ScheduleProcessing

				repo.EXPECT().
					ListDue(gomock.Any(), testNow, testBatchSize).
					Times(1).
					Return([]domain.PaymentSchedule{last}, nil)

				repo.EXPECT().
					Claim(gomock.Any(), last.ID).
					Times(1).
					Return(lastClaimed, nil)

				executor.EXPECT().
					ExecuteSchedule(gomock.Any(), lastClaimed).
					Times(1).
					Return(domain.PaymentResult{}, execErr)

				repo.EXPECT().
					MarkFailed(gomock.Any(), last.ID, 3, execErr.Error()).
					Times(1).
					Return(domain.PaymentSchedule{}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), "tester", "PAYMENT_SCHEDULED_FAILED", gomock.Any(), gomock.Any()).
					Times(1)
			},
		},
		{
			name: "PollErrorSkipsBatch",
			buildStubs: func(repo *MockRepo, executor *MockExecutor, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListDue(gomock.Any(), testNow, testBatchSize).
					Times(1).
					Return(nil, errors.New("connection refused"))

				repo.EXPECT().Claim(gomock.Any(), gomock.Any()).Times(0)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			worker, repo, executor, auditor := newTestWorker(ctrl)
			tc.buildStubs(repo, executor, auditor)

			worker.Tick(context.Background())
		})
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	worker, repo, _, _ := newTestWorker(ctrl)
	worker.pollInterval = time.Millisecond

	repo.EXPECT().
		ListDue(gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes().
		Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancel")
	}
}
