package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/internal/mock"
	"github.com/fitjourney/fitsync/internal/store"
	"github.com/fitjourney/fitsync/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockSessionRepository, *mock.MockRemoteStore) {
	t.Helper()

	sessions := mock.NewMockSessionRepository(ctrl)
	remote := mock.NewMockRemoteStore(ctrl)
	svc := NewAuthService(sessions, remote, logger.Nop()).(*authService)
	return svc, sessions, remote
}

func TestAuthService_Login_SavesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, remote := newTestAuthSvc(t, ctrl)
	creds := models.Credentials{Email: "a@b.c", Password: "secret"}

	remote.EXPECT().Login(gomock.Any(), creds).
		Return(models.Token{SignedString: "jwt", UserID: 7}, nil)
	sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, int64(7), s.UserID)
			assert.Equal(t, "jwt", s.Token)
			assert.False(t, s.SavedAt.IsZero())
			return nil
		})

	require.NoError(t, svc.Login(context.Background(), creds))
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Login_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, remote := newTestAuthSvc(t, ctrl)
	creds := models.Credentials{Email: "a@b.c", Password: "wrong"}

	remoteErr := errors.New("401 unauthorized")
	remote.EXPECT().Login(gomock.Any(), creds).Return(models.Token{}, remoteErr)

	err := svc.Login(context.Background(), creds)
	assert.ErrorIs(t, err, remoteErr)
}

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _ := newTestAuthSvc(t, ctrl)
	sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}

func TestAuthService_RestoreSession_PrimesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, remote := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().GetSession(gomock.Any()).Return(session(), nil)
	remote.EXPECT().SetToken("jwt-token").Return(nil)

	require.NoError(t, svc.RestoreSession(context.Background()))
}

func TestAuthService_RestoreSession_NoSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _ := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().GetSession(gomock.Any()).
		Return(models.Session{}, store.ErrLocalSessionNotFound)

	err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
