package ledgerrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/altx-finance/ledger-engine/internal/accountrepo"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/configpkg"
	"github.com/altx-finance/ledger-engine/pkg/randompkg"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testRepo        *RepoPGS
	testAccountRepo *accountrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)
	testAccountRepo = accountrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func seedAccount(t *testing.T, balance, currency string) domain.Account {
	account, err := testAccountRepo.Create(context.Background(), randompkg.Owner(), balance, currency)
	require.NoError(t, err)

	return account
}

func TestTransfer(t *testing.T) {
	debitAccount := seedAccount(t, "1000.00", "USD")
	creditAccount := seedAccount(t, "1000.00", "USD")
	key := randompkg.IdempotencyKey()

	arg := domain.RecordTransferParams{
		DebitAccountID:  debitAccount.ID,
		CreditAccountID: creditAccount.ID,
		Amount:          "100.00",
		Currency:        "USD",
		IdempotencyKey:  key,
	}

	result, err := testRepo.Transfer(context.Background(), arg)
	require.NoError(t, err)
	require.False(t, result.Replayed)

	wantEntry := domain.LedgerEntry{
		DebitAccountID:  debitAccount.ID,
		CreditAccountID: creditAccount.ID,
		Amount:          "100.00",
		Currency:        "USD",
		IdempotencyKey:  key,
	}

	ignoreFields := cmpopts.IgnoreFields(domain.LedgerEntry{}, "ID", "CreatedAt")
	if diff := cmp.Diff(wantEntry, result.Entry, ignoreFields); diff != "" {
		t.Errorf("Transfer entry returned unexpected difference (-want +got):\n%s", diff)
	}

	require.NotZero(t, result.Entry.ID)

	require.Equal(t, "900.00", result.DebitAccount.Balance)
	require.Equal(t, "1100.00", result.CreditAccount.Balance)
	require.Equal(t, debitAccount.Version+1, result.DebitAccount.Version)
	require.Equal(t, creditAccount.Version+1, result.CreditAccount.Version)
}

func TestTransferReplaysIdempotencyKey(t *testing.T) {
	debitAccount := seedAccount(t, "1000.00", "USD")
	creditAccount := seedAccount(t, "1000.00", "USD")

	arg := domain.RecordTransferParams{
		DebitAccountID:  debitAccount.ID,
		CreditAccountID: creditAccount.ID,
		Amount:          "100.00",
		Currency:        "USD",
		IdempotencyKey:  randompkg.IdempotencyKey(),
	}

	first, err := testRepo.Transfer(context.Background(), arg)
	require.NoError(t, err)
	require.False(t, first.Replayed)

	second, err := testRepo.Transfer(context.Background(), arg)
	require.NoError(t, err)
	require.True(t, second.Replayed)
	require.Equal(t, first.Entry.ID, second.Entry.ID)

	// Balances stay exactly where the first commit left them.
	gotDebit, err := testAccountRepo.Get(context.Background(), debitAccount.ID)
	require.NoError(t, err)
	require.Equal(t, "900.00", gotDebit.Balance)

	gotCredit, err := testAccountRepo.Get(context.Background(), creditAccount.ID)
	require.NoError(t, err)
	require.Equal(t, "1100.00", gotCredit.Balance)
}

func TestTransferValidation(t *testing.T) {
	debitAccount := seedAccount(t, "1000.00", "USD")
	creditAccount := seedAccount(t, "1000.00", "USD")
	eurAccount := seedAccount(t, "1000.00", "EUR")

	frozenAccount := seedAccount(t, "1000.00", "USD")
	_, err := testAccountRepo.SetStatus(context.Background(), frozenAccount.ID, domain.StatusFrozen)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		arg     domain.RecordTransferParams
		wantErr error
	}{
		{
			name: "MalformedAmount",
			arg: domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: creditAccount.ID,
				Amount:          "ten",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "ZeroAmount",
			arg: domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: creditAccount.ID,
				Amount:          "0",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name: "NegativeAmount",
			arg: domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: creditAccount.ID,
				Amount:          "-5.00",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name: "SameAccount",
			arg: domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: debitAccount.ID,
				Amount:          "100.00",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrSameAccountTransfer,
		},
		{
			name: "DebitAccountNotFound",
			arg: domain.RecordTransferParams{
				DebitAccountID:  -1,
				CreditAccountID: creditAccount.ID,
				Amount:          "100.00",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "InactiveAccount",
			arg: domain.RecordTransferParams{
				DebitAccountID:  frozenAccount.ID,
				CreditAccountID: creditAccount.ID,
				Amount:          "100.00",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrAccountInactive,
		},
		{
			name: "CurrencyMismatch",
			arg: domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: eurAccount.ID,
				Amount:          "100.00",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrCurrencyMismatch,
		},
		{
			name: "InsufficientBalance",
			arg: domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: creditAccount.ID,
				Amount:          "10000.00",
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			},
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			_, err := testRepo.Transfer(context.Background(), tc.arg)
			require.EqualError(t, err, tc.wantErr.Error())
		})
	}

	// None of the rejected transfers may have touched the balances.
	gotDebit, err := testAccountRepo.Get(context.Background(), debitAccount.ID)
	require.NoError(t, err)
	require.Equal(t, "1000.00", gotDebit.Balance)

	gotCredit, err := testAccountRepo.Get(context.Background(), creditAccount.ID)
	require.NoError(t, err)
	require.Equal(t, "1000.00", gotCredit.Balance)
}

func TestTransferConcurrent(t *testing.T) {
	debitAccount := seedAccount(t, "1000.00", "USD")
	creditAccount := seedAccount(t, "1000.00", "USD")

	// Concurrent commits race on the version column. Losers abort with
	// ErrConcurrentModification and the caller retries, so only conservation
	// and the success count are asserted here.
	n := 10
	amount := decimal.RequireFromString("10.00")

	errs := make(chan error)

	for i := 0; i < n; i++ {
		go func() {
			_, err := testRepo.Transfer(context.Background(), domain.RecordTransferParams{
				DebitAccountID:  debitAccount.ID,
				CreditAccountID: creditAccount.ID,
				Amount:          amount.StringFixed(2),
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			})
			errs <- err
		}()
	}

	succeeded := 0

	for i := 0; i < n; i++ {
		err := <-errs
		if err == nil {
			succeeded++
			continue
		}

		require.EqualError(t, err, domain.ErrConcurrentModification.Error())
	}

	require.GreaterOrEqual(t, succeeded, 1)

	gotDebit, err := testAccountRepo.Get(context.Background(), debitAccount.ID)
	require.NoError(t, err)

	gotCredit, err := testAccountRepo.Get(context.Background(), creditAccount.ID)
	require.NoError(t, err)

	moved := amount.Mul(decimal.NewFromInt(int64(succeeded)))
	require.Equal(t, decimal.RequireFromString("1000.00").Sub(moved).StringFixed(2), gotDebit.Balance)
	require.Equal(t, decimal.RequireFromString("1000.00").Add(moved).StringFixed(2), gotCredit.Balance)
}

func TestTransferConcurrentOppositeDirections(t *testing.T) {
	accountA := seedAccount(t, "1000.00", "USD")
	accountB := seedAccount(t, "1000.00", "USD")

	// Alternating directions would deadlock if row locks were taken in
	// debit-then-credit order; locks go in ascending account id order
	// instead, so losers fail fast with a version conflict.
	n := 10
	amount := decimal.RequireFromString("10.00")

	type outcome struct {
		aToB bool
		err  error
	}

	outcomes := make(chan outcome)

	for i := 0; i < n; i++ {
		aToB := i%2 == 0

		go func() {
			debitID, creditID := accountA.ID, accountB.ID
			if !aToB {
				debitID, creditID = accountB.ID, accountA.ID
			}

			_, err := testRepo.Transfer(context.Background(), domain.RecordTransferParams{
				DebitAccountID:  debitID,
				CreditAccountID: creditID,
				Amount:          amount.StringFixed(2),
				Currency:        "USD",
				IdempotencyKey:  randompkg.IdempotencyKey(),
			})
			outcomes <- outcome{aToB: aToB, err: err}
		}()
	}

	var aToBWins, bToAWins int64

	for i := 0; i < n; i++ {
		got := <-outcomes
		if got.err == nil {
			if got.aToB {
				aToBWins++
			} else {
				bToAWins++
			}

			continue
		}

		require.EqualError(t, got.err, domain.ErrConcurrentModification.Error())
	}

	gotA, err := testAccountRepo.Get(context.Background(), accountA.ID)
	require.NoError(t, err)

	gotB, err := testAccountRepo.Get(context.Background(), accountB.ID)
	require.NoError(t, err)

	net := amount.Mul(decimal.NewFromInt(aToBWins - bToAWins))
	require.Equal(t, decimal.RequireFromString("1000.00").Sub(net).StringFixed(2), gotA.Balance)
	require.Equal(t, decimal.RequireFromString("1000.00").Add(net).StringFixed(2), gotB.Balance)
}
