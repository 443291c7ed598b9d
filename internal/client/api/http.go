package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veriscan/veriscan-go/internal/client/models"
	"github.com/veriscan/veriscan-go/internal/common"
	"github.com/veriscan/veriscan-go/internal/logging"
)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient constructs an HTTPClient for the service at baseURL.
// tokens supplies the bearer credential; it may return an empty token for
// unauthenticated calls.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// detailBody matches the error shape of the remote service: {"detail": "..."}.
type detailBody struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthHeaderName, "Bearer "+token)
		}
	}
	return req, nil
}

// do executes req and decodes a 2xx JSON response into out (when non-nil).
// Non-2xx responses become *StatusError with the server detail message;
// transport failures wrap common.ErrUnavailable.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed",
			"method", req.Method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var d detailBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&d)
		c.log.Debug(req.Context(), "request rejected",
			"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return &StatusError{Status: resp.StatusCode, Detail: d.Detail}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	in := map[string]string{"email": email, "password": password, "full_name": fullName}
	var user models.User
	if err := c.postJSON(ctx, "/api/auth/register", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	// The login endpoint takes OAuth2-style form credentials, not JSON.
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, fullName string) (*models.User, error) {
	data, err := json.Marshal(map[string]string{"full_name": fullName})
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/api/auth/profile", "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ValidatePassword(ctx context.Context, currentPassword string) error {
	in := map[string]string{"current_password": currentPassword}
	return c.postJSON(ctx, "/api/auth/validate-password", in, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	in := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.postJSON(ctx, "/api/auth/change-password", in, nil)
}

func (c *HTTPClient) DetectText(ctx context.Context, text string) (*models.VerificationRecord, error) {
	var rec models.VerificationRecord
	if err := c.postJSON(ctx, "/api/detect/text", map[string]string{"text": text}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) DetectImage(ctx context.Context, fileName string, data io.Reader) (*models.VerificationRecord, error) {
	return c.detectUpload(ctx, "/api/detect/image", fileName, data)
}

func (c *HTTPClient) DetectVideo(ctx context.Context, fileName string, data io.Reader) (*models.VerificationRecord, error) {
	return c.detectUpload(ctx, "/api/detect/video", fileName, data)
}

// detectUpload posts a media file as a multipart upload with field "file".
// The payload is buffered only for the duration of the request and not
// retained afterwards.
func (c *HTTPClient) detectUpload(ctx context.Context, path, fileName string, data io.Reader) (*models.VerificationRecord, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, w.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}
	var rec models.VerificationRecord
	if err := c.do(req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) Results(ctx context.Context, limit, skip int) ([]models.VerificationRecord, error) {
	path := "/api/results/?limit=" + strconv.Itoa(limit) + "&skip=" + strconv.Itoa(skip)
	var records []models.VerificationRecord
	if err := c.getJSON(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.getJSON(ctx, "/api/results/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) Contact(ctx context.Context, name, email, message string) error {
	in := map[string]string{"name": name, "email": email, "message": message}
	return c.postJSON(ctx, "/api/contact", in, nil)
}
