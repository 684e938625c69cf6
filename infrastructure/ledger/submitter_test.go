package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"social-bridge/domain"
	"social-bridge/mocks"
)

func TestSubmitter_SignsOverAnchorAndBlob(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledgerMock := mocks.NewMockLedgerClient(ctrl)

	signer, err := domain.NewIdentity("Alice")
	req.NoError(err)
	anchor := [32]byte{0xAB, 0xCD}
	unsigned := []byte("opaque-prepared-blob")

	var broadcast []byte
	ledgerMock.EXPECT().LatestAnchor(gomock.Any()).Return(anchor, nil)
	ledgerMock.EXPECT().SubmitSigned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, signedTx []byte) (string, error) {
			broadcast = signedTx
			return "sig-1", nil
		})
	ledgerMock.EXPECT().Confirm(gomock.Any(), "sig-1").Return(nil)

	submitter := NewSubmitter(ledgerMock, slog.Default())
	signature, err := submitter.Submit(context.Background(), unsigned, signer)
	req.NoError(err)
	req.Equal("sig-1", signature)

	env, err := decodeEnvelope(broadcast)
	req.NoError(err)
	req.Equal(anchor, env.Anchor)
	req.Equal([]byte(signer.PublicKey), []byte(env.SignerKey))
	req.Equal(unsigned, env.Unsigned)
	req.True(env.verify())
}

func TestSubmitter_AnchorFailureStopsEverything(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledgerMock := mocks.NewMockLedgerClient(ctrl)

	ledgerMock.EXPECT().LatestAnchor(gomock.Any()).
		Return([32]byte{}, fmt.Errorf("node down"))

	signer, err := domain.NewIdentity("Alice")
	req.NoError(err)

	submitter := NewSubmitter(ledgerMock, slog.Default())
	_, err = submitter.Submit(context.Background(), []byte("blob"), signer)
	req.Error(err)
}

func TestSubmitter_BroadcastErrorNotRetried(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledgerMock := mocks.NewMockLedgerClient(ctrl)

	ledgerMock.EXPECT().LatestAnchor(gomock.Any()).Return([32]byte{1}, nil)
	ledgerMock.EXPECT().SubmitSigned(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("rejected")).Times(1)

	signer, err := domain.NewIdentity("Alice")
	req.NoError(err)

	submitter := NewSubmitter(ledgerMock, slog.Default())
	_, err = submitter.Submit(context.Background(), []byte("blob"), signer)
	req.Error(err)
}

func TestSubmitter_ConfirmationFailureSurfaces(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledgerMock := mocks.NewMockLedgerClient(ctrl)

	ledgerMock.EXPECT().LatestAnchor(gomock.Any()).Return([32]byte{1}, nil)
	ledgerMock.EXPECT().SubmitSigned(gomock.Any(), gomock.Any()).Return("sig-1", nil)
	ledgerMock.EXPECT().Confirm(gomock.Any(), "sig-1").Return(fmt.Errorf("not confirmed"))

	signer, err := domain.NewIdentity("Alice")
	req.NoError(err)

	submitter := NewSubmitter(ledgerMock, slog.Default())
	_, err = submitter.Submit(context.Background(), []byte("blob"), signer)
	req.Error(err)
}

func TestEnvelope_DecodeTooShort(t *testing.T) {
	req := require.New(t)
	_, err := decodeEnvelope(make([]byte, envelopeHeaderSize-1))
	req.Error(err)
}
