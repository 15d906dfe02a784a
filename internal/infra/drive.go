package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"
)

// DriveClient talks to a generic cloud file-storage HTTP API (Google Drive v3
// shaped): list files by query, create via multipart upload, update via media
// upload, download by id. The bearer token is supplied per call because it
// belongs to the end user's OAuth session, not to this service.
type DriveClient struct {
	apiURL     string
	uploadURL  string
	httpClient *http.Client
}

func NewDriveClient(apiURL, uploadURL string) *DriveClient {
	return &DriveClient{
		apiURL:     apiURL,
		uploadURL:  uploadURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type driveFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

// FindByName looks up a file by exact name in the app data space. Returns an
// empty id (no error) when the file does not exist.
func (c *DriveClient) FindByName(ctx context.Context, token, name string) (string, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("name='%s' and trashed=false", name))
	q.Set("spaces", "appDataFolder")
	q.Set("fields", "files(id,name)")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/files?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("drive: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("drive: list files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("drive: list returned %d", resp.StatusCode)
	}

	var list driveFileList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("drive: decode list: %w", err)
	}
	for _, f := range list.Files {
		if f.Name == name {
			return f.ID, nil
		}
	}
	return "", nil
}

// Create uploads a new file via multipart/related (metadata part + media part)
// and returns the new file id.
func (c *DriveClient) Create(ctx context.Context, token, name string, content []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	meta, err := json.Marshal(map[string]any{
		"name":    name,
		"parents": []string{"appDataFolder"},
	})
	if err != nil {
		return "", fmt.Errorf("drive: marshal metadata: %w", err)
	}

	metaHdr := textproto.MIMEHeader{}
	metaHdr.Set("Content-Type", "application/json; charset=UTF-8")
	part, err := w.CreatePart(metaHdr)
	if err != nil {
		return "", fmt.Errorf("drive: metadata part: %w", err)
	}
	if _, err := part.Write(meta); err != nil {
		return "", fmt.Errorf("drive: write metadata: %w", err)
	}

	mediaHdr := textproto.MIMEHeader{}
	mediaHdr.Set("Content-Type", "application/json")
	part, err = w.CreatePart(mediaHdr)
	if err != nil {
		return "", fmt.Errorf("drive: media part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", fmt.Errorf("drive: write media: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("drive: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.uploadURL+"/files?uploadType=multipart", &buf)
	if err != nil {
		return "", fmt.Errorf("drive: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "multipart/related; boundary="+w.Boundary())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("drive: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("drive: upload returned %d", resp.StatusCode)
	}

	var created driveFile
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("drive: decode upload response: %w", err)
	}
	return created.ID, nil
}

// Update overwrites an existing file's content via media upload.
func (c *DriveClient) Update(ctx context.Context, token, fileID string, content []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		c.uploadURL+"/files/"+fileID+"?uploadType=media", bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("drive: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("drive: update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("drive: update returned %d", resp.StatusCode)
	}
	return nil
}

// Download fetches a file's raw content.
func (c *DriveClient) Download(ctx context.Context, token, fileID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/files/"+fileID+"?alt=media", nil)
	if err != nil {
		return nil, fmt.Errorf("drive: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("drive: download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive: download returned %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("drive: read body: %w", err)
	}
	return data, nil
}
