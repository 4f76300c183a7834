package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitjourney/fitsync/internal/adapter"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

type authService struct {
	sessions store.SessionRepository
	remote   adapter.RemoteStore
	log      *logger.Logger
}

func NewAuthService(sessions store.SessionRepository, remote adapter.RemoteStore, log *logger.Logger) AuthService {
	return &authService{sessions: sessions, remote: remote, log: log}
}

// Login authenticates against the remote backend and persists the session
// locally so later launches can sync without re-entering credentials.
func (s *authService) Login(ctx context.Context, creds models.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	token, err := s.remote.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("remote login: %w", err)
	}

	session := models.Session{
		UserID:  token.UserID,
		Token:   token.SignedString,
		SavedAt: time.Now(),
	}
	if err = s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.log.Info().Int64("user_id", token.UserID).Msg("logged in")
	return nil
}

// Logout drops the local session. Local data stays on the device.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

func (s *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &session, nil
}

// RestoreSession primes the remote client with the saved token. Called on
// startup; a missing session is reported as ErrNotAuthenticated so the
// caller can keep running offline.
func (s *authService) RestoreSession(ctx context.Context) error {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if err = s.remote.SetToken(session.Token); err != nil {
		return fmt.Errorf("restore remote token: %w", err)
	}
	s.log.Info().Int64("user_id", session.UserID).Msg("session restored")
	return nil
}
