package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitjourney/fitsync/internal/store"
)

// currentUserID resolves the signed-in user from the saved session.
// Feature services operate on the single local user; a missing session
// surfaces as ErrNotAuthenticated.
func currentUserID(ctx context.Context, sessions store.SessionRepository) (int64, error) {
	sess, err := sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return 0, ErrNotAuthenticated
	}
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	return sess.UserID, nil
}
