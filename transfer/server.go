// Package transfer is the local stand-in for a real content-delivery
// protocol: a short-lived HTTP server offers one dummy file, and the
// command payload tells the recipient where to fetch it. Nothing here is
// encrypted for real; the session key is a placeholder.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"

	pb "social-bridge/proto/protocols"

	"google.golang.org/protobuf/proto"
)

const dummyFileName = "dummy_file.zip"

// Session is one ephemeral offering: a served file plus the identifiers
// the recipient needs to "download" it and log the outcome.
type Session struct {
	ID  uint64
	URL string

	server *http.Server
	dir    string
	log    *slog.Logger
}

// Start writes the dummy file to a temp dir and serves it on an
// OS-assigned localhost port.
func Start(log *slog.Logger) (*Session, error) {
	dir, err := os.MkdirTemp("", "transfer-session-*")
	if err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}

	path := filepath.Join(dir, dummyFileName)
	if err := os.WriteFile(path, []byte("dummy"), 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("writing dummy file: %w", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("opening transfer listener: %w", err)
	}

	router := chi.NewRouter()
	router.Get("/"+dummyFileName, func(w http.ResponseWriter, r *http.Request) {
		mime, err := mimetype.DetectFile(path)
		if err == nil {
			w.Header().Set("Content-Type", mime.String())
		}
		http.ServeFile(w, r, path)
	})

	session := &Session{
		ID:     rand.Uint64(),
		URL:    fmt.Sprintf("http://%s/%s", listener.Addr().String(), dummyFileName),
		server: &http.Server{Handler: router},
		dir:    dir,
		log:    log,
	}

	go func() {
		if err := session.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("Transfer server stopped unexpectedly", "error", err)
		}
	}()
	log.Debug("Transfer session started", "session_id", session.ID, "url", session.URL)

	return session, nil
}

// Close stops the server and removes the served file.
func (s *Session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.server.Shutdown(ctx)
	_ = os.RemoveAll(s.dir)
	s.log.Debug("Transfer session closed", "session_id", s.ID)
}

// BuildPayload encodes the CommandConfig carried by a file-transfer command.
func (s *Session) BuildPayload(recipient string) ([]byte, error) {
	config := &pb.CommandConfig{
		SessionId:           s.ID,
		EncryptedSessionKey: []byte("encrypted_key_for_" + recipient),
		Destination:         &pb.Destination{Url: s.URL},
		Meta:                []byte("file_transfer"),
	}
	payload, err := proto.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("encoding command config: %w", err)
	}
	return payload, nil
}
