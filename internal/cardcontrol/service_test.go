package cardcontrol

import (
	"context"
	"testing"

	"github.com/altx-finance/ledger-engine/internal/audit"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const (
	testActor = "tester"
	testToken = "tok_4f1c2d3e"
)

func newTestService(ctrl *gomock.Controller) (*Service, *MockRepo, *MockDebitSummer, *audit.MockRecorder) {
	repo := NewMockRepo(ctrl)
	entries := NewMockDebitSummer(ctrl)
	auditor := audit.NewMockRecorder(ctrl)

	return NewService(repo, entries, auditor), repo, entries, auditor
}

func intPtr(v int) *int { return &v }

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _, auditor := newTestService(ctrl)

	repo.EXPECT().
		Create(gomock.Any(), int64(1), testToken).
		Times(1).
		Return(Card{ID: 9, AccountID: 1, Token: testToken, Status: StatusActive}, nil)

	auditor.EXPECT().
		Record(gomock.Any(), testActor, "CARD_REGISTERED", gomock.Any(), "").
		Times(1)

	c, err := service.Register(context.Background(), testActor, 1, testToken)
	require.NoError(t, err)
	require.Equal(t, int64(9), c.ID)
}

func TestSetStatus(t *testing.T) {
	testCases := []struct {
		name   string
		status Status
		action string
	}{
		{name: "Freeze", status: StatusFrozen, action: "CARD_FROZEN"},
		{name: "Unfreeze", status: StatusActive, action: "CARD_UNFROZEN"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, repo, _, auditor := newTestService(ctrl)

			repo.EXPECT().
				SetStatus(gomock.Any(), testToken, tc.status).
				Times(1).
				Return(Card{ID: 9, AccountID: 1, Token: testToken, Status: tc.status}, nil)

			auditor.EXPECT().
				Record(gomock.Any(), testActor, tc.action, gomock.Any(), "").
				Times(1)

			c, err := service.SetStatus(context.Background(), testActor, testToken, tc.status)
			require.NoError(t, err)
			require.Equal(t, tc.status, c.Status)
		})
	}
}

func TestValidateCardTransaction(t *testing.T) {
	active := Card{ID: 9, AccountID: 1, Token: testToken, Status: StatusActive}

	testCases := []struct {
		name          string
		amount        string
		mcc           *int
		geo           string
		buildStubs    func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder)
		checkResponse func(t *testing.T, res ValidationResult, err error)
	}{
		{
			name:   "UnrestrictedCardPasses",
			amount: "50.00",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(active, nil)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Valid)
				require.Equal(t, int64(9), res.CardID)
				require.Equal(t, int64(1), res.AccountID)
			},
		},
		{
			name:   "FrozenCardRejected",
			amount: "50.00",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				frozen := active
				frozen.Status = StatusFrozen

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(frozen, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "CARD_VALIDATION_FAILED", gomock.Any(), "").
					Times(1)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.ErrorIs(t, err, ErrCardFrozen)
				require.False(t, res.Valid)
			},
		},
		{
			name:   "MCCOutsideWhitelist",
			amount: "50.00",
			mcc:    intPtr(7995),
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				restricted := active
				restricted.MCCWhitelist = []int{5411, 5812}

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(restricted, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "CARD_VALIDATION_FAILED", gomock.Any(), "").
					Times(1)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.ErrorIs(t, err, ErrMCCNotAllowed)
			},
		},
		{
			name:   "MCCInsideWhitelist",
			amount: "50.00",
			mcc:    intPtr(5411),
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				restricted := active
				restricted.MCCWhitelist = []int{5411, 5812}

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(restricted, nil)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Valid)
			},
		},
		{
			name:   "GeoOutsideWhitelist",
			amount: "50.00",
			geo:    "RU",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				restricted := active
				restricted.GeoWhitelist = []string{"DE", "FR"}

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(restricted, nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "CARD_VALIDATION_FAILED", gomock.Any(), "").
					Times(1)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.ErrorIs(t, err, ErrGeoNotAllowed)
			},
		},
		{
			name:   "DailyLimitExceeded",
			amount: "60.00",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				limited := active
				limited.DailyLimit = "100.00"

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(limited, nil)

				entries.EXPECT().
					SumDebitsSince(gomock.Any(), int64(1), gomock.Any()).
					Times(1).
					Return("50.00", nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "CARD_VALIDATION_FAILED", gomock.Any(), "").
					Times(1)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.ErrorIs(t, err, ErrCardLimitExceeded)
			},
		},
		{
			name:   "MonthlyLimitExceeded",
			amount: "60.00",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				limited := active
				limited.MonthlyLimit = "1000.00"

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(limited, nil)

				entries.EXPECT().
					SumDebitsSince(gomock.Any(), int64(1), gomock.Any()).
					Times(1).
					Return("950.00", nil)

				auditor.EXPECT().
					Record(gomock.Any(), testActor, "CARD_VALIDATION_FAILED", gomock.Any(), "").
					Times(1)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.ErrorIs(t, err, ErrCardLimitExceeded)
			},
		},
		{
			name:   "SpendExactlyAtLimitPasses",
			amount: "50.00",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				limited := active
				limited.DailyLimit = "100.00"

				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(limited, nil)

				entries.EXPECT().
					SumDebitsSince(gomock.Any(), int64(1), gomock.Any()).
					Times(1).
					Return("50.00", nil)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Valid)
			},
		},
		{
			name:   "UnknownToken",
			amount: "50.00",
			buildStubs: func(repo *MockRepo, entries *MockDebitSummer, auditor *audit.MockRecorder) {
				repo.EXPECT().
					GetByToken(gomock.Any(), testToken).
					Times(1).
					Return(Card{}, ErrCardNotFound)
			},
			checkResponse: func(t *testing.T, res ValidationResult, err error) {
				require.ErrorIs(t, err, ErrCardNotFound)
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

			res, err := service.ValidateCardTransaction(context.Background(), testActor, testToken, tc.amount, tc.mcc, tc.geo)
			tc.checkResponse(t, res, err)
		})
	}
}
