package accountrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/configpkg"
	"github.com/altx-finance/ledger-engine/pkg/randompkg"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testRepo *RepoPGS

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

	os.Exit(m.Run())
}

func createRandomAccount(t *testing.T, owner, currency string) domain.Account {
	// Balances round-trip through a numeric(20, 2) column.
	testBalance := decimal.RequireFromString(randompkg.MoneyAmountBetween(1_000, 10_000)).StringFixed(2)

	account, err := testRepo.Create(context.Background(), owner, testBalance, currency)
	require.NoError(t, err)
	require.NotEmpty(t, account)

	require.Equal(t, owner, account.Owner)
	require.Equal(t, testBalance, account.Balance)
	require.Equal(t, testBalance, account.OpeningBalance)
	require.Equal(t, currency, account.Currency)
	require.Equal(t, domain.StatusActive, account.Status)
	require.Equal(t, int64(1), account.Version)

	require.NotZero(t, account.ID)
	require.NotZero(t, account.CreatedAt)

	return account
}

func TestCreate(t *testing.T) {
	createRandomAccount(t, randompkg.Owner(), randompkg.Currency())
}

func TestCreateDuplicateCurrency(t *testing.T) {
	account := createRandomAccount(t, randompkg.Owner(), randompkg.Currency())

	duplicate, err := testRepo.Create(context.Background(), account.Owner,
		randompkg.MoneyAmountBetween(1_000, 10_000), account.Currency)
	require.EqualError(t, err, domain.ErrCurrencyAlreadyExists.Error())
	require.Empty(t, duplicate)
}

func TestGet(t *testing.T) {
	account := createRandomAccount(t, randompkg.Owner(), randompkg.Currency())

	got, err := testRepo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, account, got)
}

func TestGetNotFound(t *testing.T) {
	_, err := testRepo.Get(context.Background(), -1)
	require.EqualError(t, err, domain.ErrAccountNotFound.Error())
}

func TestGetByOwnerAndCurrency(t *testing.T) {
	account := createRandomAccount(t, randompkg.Owner(), randompkg.Currency())

	got, err := testRepo.GetByOwnerAndCurrency(context.Background(), account.Owner, account.Currency)
	require.NoError(t, err)
	require.Equal(t, account, got)
}

func TestCompareAndSwapBalance(t *testing.T) {
	account := createRandomAccount(t, randompkg.Owner(), randompkg.Currency())

	newBalance := decimal.RequireFromString(account.Balance).
		Add(decimal.RequireFromString("100")).StringFixed(2)

	updated, err := testRepo.CompareAndSwapBalance(context.Background(), account.ID, newBalance, account.Version)
	require.NoError(t, err)
	require.Equal(t, newBalance, updated.Balance)
	require.Equal(t, account.OpeningBalance, updated.OpeningBalance)
	require.Equal(t, account.Version+1, updated.Version)

	// The stale version must not win a second time.
	_, err = testRepo.CompareAndSwapBalance(context.Background(), account.ID, newBalance, account.Version)
	require.EqualError(t, err, domain.ErrConcurrentModification.Error())
}

func TestSetStatus(t *testing.T) {
	account := createRandomAccount(t, randompkg.Owner(), randompkg.Currency())

	frozen, err := testRepo.SetStatus(context.Background(), account.ID, domain.StatusFrozen)
	require.NoError(t, err)
	require.Equal(t, domain.StatusFrozen, frozen.Status)

	closed, err := testRepo.SetStatus(context.Background(), account.ID, domain.StatusClosed)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, closed.Status)
}

func TestList(t *testing.T) {
	owner := randompkg.Owner()

	// One account per currency, the owner and currency pair is unique.
	for _, currency := range []string{"USD", "EUR", "RMB"} {
		createRandomAccount(t, owner, currency)
	}

	accounts, err := testRepo.List(context.Background(), owner, 2, 0)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	accounts, err = testRepo.List(context.Background(), owner, 2, 2)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	for _, account := range accounts {
		require.Equal(t, owner, account.Owner)
	}
}
