package gcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const uploadEndpoint = "https://storage.googleapis.com/upload/storage/v1/b/%s/o?uploadType=media&name=%s"

// Upload writes the payload to the bucket and returns the public object URL.
func (b *Bucket) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if b == nil || b.client == nil {
		return "", errors.New("gcs bucket not initialized")
	}
	objectName = strings.TrimLeft(strings.TrimSpace(objectName), "/")
	if objectName == "" {
		return "", errors.New("object name is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	token, err := b.client.tokenSource.Token(ctx)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf(uploadEndpoint, url.PathEscape(b.name), url.QueryEscape(objectName))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := b.client.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if len(body) > 0 {
			return "", fmt.Errorf("gcs upload failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
		}
		return "", fmt.Errorf("gcs upload failed: %s", resp.Status)
	}

	return b.PublicURL(objectName), nil
}

// PublicURL returns the canonical public URL for an object in the bucket.
func (b *Bucket) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.name, objectName)
}
