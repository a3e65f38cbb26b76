// Package adminclient implements the admin review surface: session
// handling, the submission browser and inspector, the audit and feedback
// viewers, and the settings panel. All components route their requests
// through one Client so unauthorized responses tear the session down in
// exactly one place.
package adminclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrSessionExpired signals that the backend rejected the credential;
	// the session has already been invalidated when this is returned.
	ErrSessionExpired = errors.New("session expired, please log in again")

	ErrNotLoggedIn = errors.New("not logged in")
)

// apiError carries the backend's message for non-2xx responses.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// BackendMessage extracts the backend-provided message from err, or
// returns the fallback for transport errors.
func BackendMessage(err error, fallback string) string {
	var ae *apiError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// Client wraps the admin REST surface with bearer injection and
// centralized 401 handling.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionManager
}

func NewClient(baseURL string, session *SessionManager) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		session: session,
	}
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(path string, query url.Values, out interface{}) error {
	return c.do("GET", path, query, nil, out)
}

// send issues an authenticated request with a JSON body.
func (c *Client) send(method, path string, body interface{}, out interface{}) error {
	return c.do(method, path, nil, body, out)
}

func (c *Client) do(method, path string, query url.Values, body interface{}, out interface{}) error {
	sess := c.session.Current()
	if sess == nil {
		return ErrNotLoggedIn
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.HandleUnauthorized()
		return ErrSessionExpired
	}
	if resp.StatusCode >= 300 {
		return &apiError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func decodeErrorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Detail
}
