package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// FileUpload describes a file to upload to remote.it: an executable script
// or an asset used by scripts.
type FileUpload struct {
	// FileName is the name the file will have in the remote.it system.
	FileName string

	// Path is the location of the file on the local filesystem.
	Path string

	// Executable marks the file as a runnable script rather than an asset.
	Executable bool

	// ShortDesc and LongDesc are optional descriptions.
	ShortDesc string
	LongDesc  string
}

// UploadFileResponse is the service's answer to a successful upload.
type UploadFileResponse struct {
	FileID        string            `json:"fileId"`
	FileVersionID string            `json:"fileVersionId"`
	Version       int               `json:"version"`
	Name          string            `json:"name"`
	Executable    bool              `json:"executable"`
	OwnerID       string            `json:"ownerId"`
	FileArguments []json.RawMessage `json:"fileArguments"`
}

// uploadError is the service's answer to a rejected upload.
type uploadError struct {
	Message string `json:"message"`
}

// UploadFile uploads a file through the multipart endpoint. This is the one
// operation that is not GraphQL; the request is still signed the same way,
// with the multipart payload as the body.
func (c *Client) UploadFile(ctx context.Context, up FileUpload) (*UploadFileResponse, error) {
	file, err := os.Open(up.Path)
	if err != nil {
		return nil, fmt.Errorf("api: open upload file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile(up.FileName, up.FileName)
	if err != nil {
		return nil, fmt.Errorf("api: build upload form: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("api: read upload file: %w", err)
	}

	fields := map[string]string{
		"executable": strconv.FormatBool(up.Executable),
	}
	if up.ShortDesc != "" {
		fields["shortDesc"] = up.ShortDesc
	}
	if up.LongDesc != "" {
		fields["longDesc"] = up.LongDesc
	}

	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("api: build upload form: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("api: build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(FileUploadPath), bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}

	req.Header.Set("Content-Type", form.FormDataContentType())
	if c.requestID {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr uploadError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return nil, fmt.Errorf("%w: %s", ErrUpload, resp.Status)
		}

		return nil, fmt.Errorf("%w: %s", ErrUpload, apiErr.Message)
	}

	var uploaded UploadFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, fmt.Errorf("api: decode response: %w", err)
	}

	return &uploaded, nil
}
