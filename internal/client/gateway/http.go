package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a gateway bound to baseURL. tokens supplies the
// bearer credential per request; a nil source sends everything
// unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// errorBody covers the message shapes the backend uses on failures.
type errorBody struct {
	Err     string `json:"err"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) message(status int) string {
	for _, m := range []string{b.Err, b.Error, b.Message} {
		if m != "" {
			return m
		}
	}
	return http.StatusText(status)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "credential unavailable, sending unauthenticated", "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &RemoteError{Status: resp.StatusCode, Message: eb.message(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) SignUp(ctx context.Context, creds models.Credentials) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/sign-up", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/sign-in", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListHoots(ctx context.Context) ([]models.Hoot, error) {
	var hoots []models.Hoot
	if err := c.do(ctx, http.MethodGet, "/hoots", nil, &hoots); err != nil {
		return nil, err
	}
	return hoots, nil
}

func (c *HTTPClient) GetHoot(ctx context.Context, hootID string) (*models.Hoot, error) {
	var hoot models.Hoot
	if err := c.do(ctx, http.MethodGet, hootPath(hootID), nil, &hoot); err != nil {
		return nil, err
	}
	return &hoot, nil
}

func (c *HTTPClient) CreateHoot(ctx context.Context, draft models.HootDraft) (*models.Hoot, error) {
	var hoot models.Hoot
	if err := c.do(ctx, http.MethodPost, "/hoots", draft, &hoot); err != nil {
		return nil, err
	}
	return &hoot, nil
}

func (c *HTTPClient) UpdateHoot(ctx context.Context, hootID string, draft models.HootDraft) (*models.Hoot, error) {
	var hoot models.Hoot
	if err := c.do(ctx, http.MethodPut, hootPath(hootID), draft, &hoot); err != nil {
		return nil, err
	}
	return &hoot, nil
}

// removedEntity is the backend's delete acknowledgement: the identity of
// the entity that was removed.
type removedEntity struct {
	ID string `json:"_id"`
}

func (c *HTTPClient) DeleteHoot(ctx context.Context, hootID string) (string, error) {
	var removed removedEntity
	if err := c.do(ctx, http.MethodDelete, hootPath(hootID), nil, &removed); err != nil {
		return "", err
	}
	if removed.ID == "" {
		removed.ID = hootID
	}
	return removed.ID, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, hootID string, draft models.CommentDraft) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, hootPath(hootID)+"/comments", draft, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) GetComment(ctx context.Context, hootID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, http.MethodGet, commentPath(hootID, commentID), nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) UpdateComment(ctx context.Context, hootID, commentID string, draft models.CommentDraft) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, http.MethodPut, commentPath(hootID, commentID), draft, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, hootID, commentID string) (string, error) {
	var removed removedEntity
	if err := c.do(ctx, http.MethodDelete, commentPath(hootID, commentID), nil, &removed); err != nil {
		return "", err
	}
	if removed.ID == "" {
		removed.ID = commentID
	}
	return removed.ID, nil
}

func hootPath(hootID string) string {
	return "/hoots/" + url.PathEscape(hootID)
}

func commentPath(hootID, commentID string) string {
	return hootPath(hootID) + "/comments/" + url.PathEscape(commentID)
}
