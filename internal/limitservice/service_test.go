package limitservice

import (
	"context"
	"testing"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testActor = "tester"

// Fixed clock so window starts are predictable.
var testNow = time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *MockRepo, *MockDebitSummer, *audit.MockRecorder) {
	repo := NewMockRepo(ctrl)
	entries := NewMockDebitSummer(ctrl)
	auditor := audit.NewMockRecorder(ctrl)

	service := NewService(repo, entries, auditor)
	service.now = func() time.Time { return testNow }

	return service, repo, entries, auditor
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _, auditor := newTestService(ctrl)

	arg := domain.CreateLimitRuleParams{Scope: domain.LimitDaily, Threshold: "500.00", Active: true}

	repo.EXPECT().
		Create(gomock.Any(), gomock.Eq(arg)).
		Times(1).
		Return(domain.LimitRule{ID: 1, Scope: domain.LimitDaily, Threshold: "500.00", Active: true}, nil)

	auditor.EXPECT().
		Record(gomock.Any(), testActor, "LIMIT_RULE_CREATED", gomock.Any(), "").
		Times(1)

	rule, err := service.CreateRule(context.Background(), testActor, arg)
	require.NoError(t, err)
	require.Equal(t, int64(1), rule.ID)
}

func TestCreateRuleRejectsBadThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _, _ := newTestService(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateRule(context.Background(), testActor, domain.CreateLimitRuleParams{
		Scope:     domain.LimitDaily,
		Threshold: "lots",
	})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestEvaluate(t *testing.T) {
	arg := EvaluateParams{
		AccountID: 1,
		Owner:     "alice",
		Amount:    "200.00",
		Geo:       "DE",
	}

	dayStart := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		arg           EvaluateParams
		buildStubs    func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder)
		checkResponse func(t *testing.T, err error)
	}{
		{
			name: "NoRulesPasses",
			arg:  arg,
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListActiveMatching(gomock.Any(), int64(1), "alice").
					Times(1).
					Return(nil, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "LIMIT_EVALUATED", gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "PerTransactionViolation",
			arg:  arg,
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListActiveMatching(gomock.Any(), int64(1), "alice").
					Times(1).
					Return([]domain.LimitRule{
						{ID: 3, Scope: domain.LimitPerTransaction, Threshold: "150.00", Active: true},
					}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "LIMIT_REJECTED", gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrLimitExceeded)

				var violation *domain.LimitViolationError
				require.ErrorAs(t, err, &violation)
				require.Equal(t, int64(3), violation.RuleID)
				require.Equal(t, "150.00", violation.Threshold)
				require.Equal(t, "0.00", violation.Spent)
				require.Equal(t, "150.00", violation.Headroom)
			},
		},
		{
			name: "DailyWindowSumsFromStartOfDay",
			arg:  arg,
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListActiveMatching(gomock.Any(), int64(1), "alice").
					Times(1).
					Return([]domain.LimitRule{
						{ID: 4, Scope: domain.LimitDaily, Threshold: "1000.00", Active: true},
					}, nil)

				entries.EXPECT().
					SumDebitsSince(gomock.Any(), int64(1), gomock.Eq(dayStart)).
					Times(1).
					Return("850.00", nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "LIMIT_REJECTED", gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(t *testing.T, err error) {
				var violation *domain.LimitViolationError
				require.ErrorAs(t, err, &violation)
				require.Equal(t, "850.00", violation.Spent)
				require.Equal(t, "150.00", violation.Headroom)
			},
		},
		{
			name: "MonthlyWindowWithHeadroomPasses",
			arg:  arg,
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListActiveMatching(gomock.Any(), int64(1), "alice").
					Times(1).
					Return([]domain.LimitRule{
						{ID: 5, Scope: domain.LimitMonthly, Threshold: "5000.00", Active: true},
					}, nil)

				entries.EXPECT().
					SumDebitsSince(gomock.Any(), int64(1), gomock.Eq(monthStart)).
					Times(1).
					Return("4800.00", nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "LIMIT_EVALUATED", gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "MCCAndGeoNarrowedRulesSkipped",
			arg:  arg,
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListActiveMatching(gomock.Any(), int64(1), "alice").
					Times(1).
					Return([]domain.LimitRule{
						{ID: 6, Scope: domain.LimitPerTransaction, Threshold: "1.00", MCC: intPtr(5411), Active: true},
						{ID: 7, Scope: domain.LimitPerTransaction, Threshold: "1.00", Geo: strPtr("US"), Active: true},
					}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "LIMIT_EVALUATED", gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "MCCNarrowedRuleApplies",
			arg: EvaluateParams{
				AccountID: 1,
				Owner:     "alice",
				Amount:    "200.00",
				MCC:       intPtr(5411),
				Geo:       "DE",
			},
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					ListActiveMatching(gomock.Any(), int64(1), "alice").
					Times(1).
					Return([]domain.LimitRule{
						{ID: 8, Scope: domain.LimitPerTransaction, Threshold: "100.00", MCC: intPtr(5411), Active: true},
					}, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "LIMIT_REJECTED", gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(t *testing.T, err error) {
				var violation *domain.LimitViolationError
				require.ErrorAs(t, err, &violation)
				require.Equal(t, int64(8), violation.RuleID)
			},
		},
		{
			name: "MalformedAmount",
			arg: EvaluateParams{
				AccountID: 1,
				Owner:     "alice",
				Amount:    "all of it",
			},
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().ListActiveMatching(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, repo, entries, auditor := newTestService(ctrl)
			tc.buildStubs(repo, entries, auditor)

			err := service.Evaluate(context.Background(), testActor, tc.arg)
			tc.checkResponse(t, err)
		})
	}
}
