package transfer

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/protobuf/proto"

	pb "social-bridge/proto/protocols"
)

func TestSession_ServesDummyFile(t *testing.T) {
	req := require.New(t)

	session, err := Start(slog.Default())
	req.NoError(err)
	defer session.Close()

	resp, err := http.Get(session.URL)
	req.NoError(err)
	defer func() { _ = resp.Body.Close() }()

	req.Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.Equal([]byte("dummy"), body)
}

func TestSession_CloseStopsServer(t *testing.T) {
	req := require.New(t)

	session, err := Start(slog.Default())
	req.NoError(err)
	session.Close()

	_, err = http.Get(session.URL)
	req.Error(err)
}

func TestSession_BuildPayload(t *testing.T) {
	req := require.New(t)

	session, err := Start(slog.Default())
	req.NoError(err)
	defer session.Close()

	payload, err := session.BuildPayload("Bob")
	req.NoError(err)

	var config pb.CommandConfig
	req.NoError(proto.Unmarshal(payload, &config))
	req.Equal(session.ID, config.SessionId)
	req.Equal([]byte("encrypted_key_for_Bob"), config.EncryptedSessionKey)
	req.Equal(session.URL, config.Destination.Url)
}

func TestSessions_HaveDistinctIDs(t *testing.T) {
	req := require.New(t)

	a, err := Start(slog.Default())
	req.NoError(err)
	defer a.Close()
	b, err := Start(slog.Default())
	req.NoError(err)
	defer b.Close()

	req.NotEqual(a.ID, b.ID)
	req.NotEqual(a.URL, b.URL)
}
