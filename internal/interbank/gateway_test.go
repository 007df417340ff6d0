package interbank

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testRequest = TransferRequest{
	Amount:          "100.00",
	Currency:        "USD",
	BeneficiaryIBAN: "DE89370400440532013000",
	BeneficiaryBank: "PARTNERDEFF",
}

func TestInitiateTransferStubMode(t *testing.T) {
	gateway := NewStubGateway(ModeStub, "partner-bank-stub", 0, 3, time.Millisecond)

	result, err := gateway.InitiateTransfer(context.Background(), testRequest)
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, result.Status)
	require.Equal(t, "partner-bank-stub", result.Provider)

	_, err = uuid.Parse(result.Reference)
	require.NoError(t, err)
}

func TestInitiateTransferRealModeAcknowledgesPending(t *testing.T) {
	gateway := NewStubGateway(ModeReal, "partner-bank", 0, 3, time.Millisecond)

	result, err := gateway.InitiateTransfer(context.Background(), testRequest)
	require.NoError(t, err)
	require.Equal(t, StatusPending, result.Status)
}

func TestInitiateTransferExhaustsRetries(t *testing.T) {
	// Failure rate of 1 fails every attempt.
	gateway := NewStubGateway(ModeStub, "partner-bank-stub", 1, 3, time.Millisecond)

	result, err := gateway.InitiateTransfer(context.Background(), testRequest)
	require.ErrorIs(t, err, ErrGatewayUnavailable)
	require.Empty(t, result.Reference)
}

func TestInitiateTransferReferencesAreUnique(t *testing.T) {
	gateway := NewStubGateway(ModeStub, "partner-bank-stub", 0, 3, time.Millisecond)

	first, err := gateway.InitiateTransfer(context.Background(), testRequest)
	require.NoError(t, err)

	second, err := gateway.InitiateTransfer(context.Background(), testRequest)
	require.NoError(t, err)

	require.NotEqual(t, first.Reference, second.Reference)
}
