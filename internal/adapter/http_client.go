package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fitjourney/fitsync/internal/config"
	"github.com/fitjourney/fitsync/internal/logger"
	"github.com/fitjourney/fitsync/models"
)

// MaxDeleteBatch is the largest number of document ids accepted by the
// remote batch-delete endpoint in one request.
const MaxDeleteBatch = 400

type httpRemoteStore struct {
	client    *resty.Client
	userAgent string
	logger    *logger.Logger

	mu     sync.RWMutex
	token  string
	userID int64
}

// NewHTTPRemoteStore builds the HTTP implementation of [RemoteStore] from
// the adapter configuration.
func NewHTTPRemoteStore(cfg config.Adapter, app config.App, log *logger.Logger) (RemoteStore, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote store base URL is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpRemoteStore{
		client:    cli,
		userAgent: app.UserAgent,
		logger:    log,
	}, nil
}

func (h *httpRemoteStore) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrNoToken
	}

	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("parse user id from token: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.userID = userID
	return nil
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", h.userAgent).
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: login request: %v", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	if err = h.SetToken(token); err != nil {
		return models.Token{}, err
	}

	return models.Token{SignedString: token, UserID: h.currentUserID()}, nil
}

func (h *httpRemoteStore) Upsert(ctx context.Context, collection, docID string, payload any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(h.docPath(collection, docID))
	if err != nil {
		return fmt.Errorf("%w: upsert %s/%s: %v", ErrRemoteUnavailable, collection, docID, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) Delete(ctx context.Context, collection, docID string) error {
	resp, err := h.authedRequest(ctx).
		Delete(h.docPath(collection, docID))
	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrRemoteUnavailable, collection, docID, err)
	}

	mapped := mapHTTPError(resp)
	if errors.Is(mapped, ErrNotFound) {
		// deletes are idempotent: the document being gone is the goal state
		return nil
	}
	return mapped
}

func (h *httpRemoteStore) DeleteBatch(ctx context.Context, collection string, docIDs []string) error {
	if len(docIDs) == 0 {
		return nil
	}
	if len(docIDs) > MaxDeleteBatch {
		return fmt.Errorf("%w: batch of %d exceeds limit %d", ErrBadRequest, len(docIDs), MaxDeleteBatch)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": docIDs}).
		Post(h.collectionPath(collection) + ":batchDelete")
	if err != nil {
		return fmt.Errorf("%w: batch delete %s: %v", ErrRemoteUnavailable, collection, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) List(ctx context.Context, collection string) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).
		Get(h.collectionPath(collection))
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrRemoteUnavailable, collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []models.Document
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("decode list response for %s: %w", collection, err)
	}

	return docs, nil
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx).SetHeader("User-Agent", h.userAgent)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpRemoteStore) currentUserID() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID
}

func (h *httpRemoteStore) collectionPath(collection string) string {
	return fmt.Sprintf("/api/users/%d/%s", h.currentUserID(), collection)
}

func (h *httpRemoteStore) docPath(collection, docID string) string {
	return h.collectionPath(collection) + "/" + docID
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parseUserIDFromJWT reads the subject claim without verifying the
// signature: the client never holds the signing key, the server re-validates
// every request anyway.
func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
