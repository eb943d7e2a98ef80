// Package drive models a partially-materialized mirror of a remote file
// provider: directories are listed on first expansion, file content is read
// on first selection, and both are cached in place so repeat visits are
// free until an explicit refresh.
package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// NodeKind distinguishes folders from files.
type NodeKind string

const (
	KindFolder NodeKind = "folder"
	KindFile   NodeKind = "file"
)

// RootFolderID addresses the top of the remote tree.
const RootFolderID = "root"

// Entry is one remote directory listing result.
type Entry struct {
	ID   string
	Name string
	Kind NodeKind
}

// Client is the remote storage provider: list children of a folder, read
// the content of a file. Both require a previously obtained bearer token.
type Client interface {
	List(ctx context.Context, folderID string) ([]Entry, error)
	Read(ctx context.Context, fileID string) (string, error)
}

const folderMIMEType = "application/vnd.google-apps.folder"

// driveClient implements Client against the Google Drive v3 REST API.
type driveClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Client for the Google Drive API at baseURL using the
// given bearer token.
func NewClient(baseURL, token string) Client {
	return &driveClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type driveFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

func (c *driveClient) List(ctx context.Context, folderID string) ([]Entry, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("'%s' in parents and trashed = false", folderID))
	q.Set("fields", "files(id,name,mimeType)")
	q.Set("orderBy", "folder,name")

	body, err := c.get(ctx, fmt.Sprintf("%s/files?%s", c.baseURL, q.Encode()))
	if err != nil {
		return nil, err
	}

	var list driveFileList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: decoding listing: %v", ErrRemoteFetch, err)
	}

	entries := make([]Entry, 0, len(list.Files))
	for _, f := range list.Files {
		kind := KindFile
		if f.MIMEType == folderMIMEType {
			kind = KindFolder
		}
		entries = append(entries, Entry{ID: f.ID, Name: f.Name, Kind: kind})
	}
	return entries, nil
}

func (c *driveClient) Read(ctx context.Context, fileID string) (string, error) {
	if c.token == "" {
		return "", ErrNoToken
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/files/%s?alt=media", c.baseURL, url.PathEscape(fileID)))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *driveClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrRemoteFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrRemoteFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrRemoteFetch, resp.StatusCode)
	}
	return body, nil
}
