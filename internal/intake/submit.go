package intake

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Submitter sends assembled contributions and feedback to the public
// endpoints. No credential is involved.
type Submitter struct {
	baseURL string
	http    *http.Client
}

func NewSubmitter(baseURL string) *Submitter {
	return &Submitter{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Submit validates the form, sends one multipart request with documents
// and photos merged into a single file list, and on success resets the
// form and returns the backend-issued submission ID. On failure the
// form keeps all entered state.
func (s *Submitter) Submit(form *Form) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"language":          form.Language,
		"contributor_name":  form.Name,
		"contributor_email": form.Email,
		"text_content":      form.Text,
		"consent":           "true",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", err
		}
	}

	allFiles := append(append([]File{}, form.Documents...), form.Photos...)
	for _, file := range allFiles {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			return "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp, err := s.http.Post(s.baseURL+"/api/submit", writer.FormDataContentType(), &buf)
	if err != nil {
		return "", errors.New("connection error: could not reach server")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", errors.New(errorMessage(resp))
	}

	var result struct {
		Status       string `json:"status"`
		SubmissionID string `json:"submission_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.New("unexpected server response")
	}

	form.Reset()
	return result.SubmissionID, nil
}

// SendFeedback posts a contributor message to the public feedback
// endpoint.
func (s *Submitter) SendFeedback(name, email, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("please enter a message")
	}

	payload, err := json.Marshal(map[string]string{
		"name": name, "email": email, "message": message,
	})
	if err != nil {
		return err
	}

	resp, err := s.http.Post(s.baseURL+"/api/feedback", "application/json", bytes.NewReader(payload))
	if err != nil {
		return errors.New("connection error: could not reach server")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.New(errorMessage(resp))
	}
	return nil
}

// PublicStats holds the marketing counters shown on the landing page.
type PublicStats struct {
	ContributorsDisplay string `json:"contributors_display"`
	DatasetsDisplay     string `json:"datasets_display"`
}

func (s *Submitter) PublicStats() (*PublicStats, error) {
	resp, err := s.http.Get(s.baseURL + "/api/public-stats")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats request failed with status %d", resp.StatusCode)
	}

	var stats PublicStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// errorMessage surfaces the backend-provided message when present,
// otherwise a generic fallback.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return "submission failed, please try again"
}
