package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HFConfig supplies the stored token and per-category repository names.
type HFConfig interface {
	HFToken() (string, error)
	HFRepo(category string) (string, error)
}

// HFClient talks to the Hugging Face Hub REST API for dataset uploads and
// token validation.
type HFClient struct {
	baseURL  string
	settings HFConfig
	client   *http.Client
}

func NewHFClient(settings HFConfig) *HFClient {
	return &HFClient{
		baseURL:  "https://huggingface.co",
		settings: settings,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewHFClientWithBase is used by tests to point at a fake hub.
func NewHFClientWithBase(settings HFConfig, baseURL string) *HFClient {
	c := NewHFClient(settings)
	c.baseURL = baseURL
	return c
}

type whoamiResponse struct {
	Name string `json:"name"`
}

// Whoami validates the stored token and returns the account name.
func (c *HFClient) Whoami() (string, error) {
	token, err := c.settings.HFToken()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("no token configured")
	}

	req, err := http.NewRequest("GET", c.baseURL+"/api/whoami-v2", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hub returned status %d", resp.StatusCode)
	}

	var who whoamiResponse
	if err := json.NewDecoder(resp.Body).Decode(&who); err != nil {
		return "", err
	}
	if who.Name == "" {
		return "unknown", nil
	}
	return who.Name, nil
}

// Push uploads the files of an approved submission to the dataset repository
// configured for its category. It is called from a goroutine after the
// decision commits; failures are logged and never surfaced to the reviewer.
func (c *HFClient) Push(category string, filePaths []string, submissionID, language string) {
	token, err := c.settings.HFToken()
	if err != nil || token == "" {
		slog.Info("hf push skipped, no token configured", "submission", submissionID)
		return
	}
	repo, err := c.settings.HFRepo(category)
	if err != nil || repo == "" {
		slog.Info("hf push skipped, no repo configured", "submission", submissionID, "category", category)
		return
	}

	for _, path := range filePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("hf push read failed", "file", path, "error", err)
			continue
		}
		pathInRepo := language + "/" + submissionID + "/" + filepath.Base(path)
		if err := c.upload(token, repo, pathInRepo, data); err != nil {
			slog.Error("hf upload failed", "repo", repo, "path", pathInRepo, "error", err)
			continue
		}
		slog.Info("hf upload complete", "repo", repo, "path", pathInRepo)
	}
}

func (c *HFClient) upload(token, repo, pathInRepo string, data []byte) error {
	url := c.baseURL + "/api/datasets/" + repo + "/upload/main/" + pathInRepo

	req, err := http.NewRequest("POST", url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("hub returned status %d", resp.StatusCode)
	}
	return nil
}
