// Package media uploads captured images to Cloudinary using an unsigned
// upload preset.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

var ErrNotConfigured = errors.New("cloudinary cloud name and upload preset are required")

type Cloudinary struct {
	BaseURL      string
	CloudName    string
	UploadPreset string
	client       *http.Client
}

func NewCloudinary(cloudName, uploadPreset string) *Cloudinary {
	return &Cloudinary{
		BaseURL:      DefaultBaseURL,
		CloudName:    cloudName,
		UploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts data as the "file" field and returns the hosted https URL.
func (c *Cloudinary) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if c.CloudName == "" || c.UploadPreset == "" {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := form.WriteField("upload_preset", c.UploadPreset); err != nil {
		return "", fmt.Errorf("failed to write preset: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", strings.TrimRight(c.BaseURL, "/"), c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	client := c.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result uploadResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, string(raw))
	}
	if result.Error != nil {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned status %d without a secure_url", resp.StatusCode)
	}
	return result.SecureURL, nil
}
