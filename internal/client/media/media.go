// Package media decides how a craft image reference travels to the backend.
//
// The form holds one image reference. After BeginEdit it is the resolved
// URL of the image already hosted by the API; after the user picks a file
// it is a device path or file:// URI. Only the latter is uploaded.
package media

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies an image reference.
type Kind int

const (
	// None means the form carries no image.
	None Kind = iota
	// Remote points at an image the server already hosts; nothing is uploaded.
	Remote
	// Local is a freshly picked file that must be attached to the request.
	Local
)

func (k Kind) String() string {
	switch k {
	case Remote:
		return "remote"
	case Local:
		return "local"
	default:
		return "none"
	}
}

// Classify reports whether ref is empty, already served by the API at
// baseURL (or any other http(s) URL), or a local file to upload.
func Classify(ref, baseURL string) Kind {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return None
	case baseURL != "" && strings.HasPrefix(ref, strings.TrimRight(baseURL, "/")):
		return Remote
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return Remote
	default:
		return Local
	}
}

// External reports whether ref is an http(s) URL on a host other than the
// API. Such a reference is Remote, so it is never uploaded.
func External(ref, baseURL string) bool {
	ref = strings.TrimSpace(ref)
	if Classify(ref, baseURL) != Remote {
		return false
	}
	return baseURL == "" || !strings.HasPrefix(ref, strings.TrimRight(baseURL, "/"))
}

// ResolveURL turns a server image path ("/uploads/x.jpg") into an absolute
// URL on the API host. Absolute URLs and empty paths are returned as is.
func ResolveURL(baseURL, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// File is an image ready to be sent as a multipart part.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Load reads a local image reference. A file:// prefix is accepted.
func Load(ref string) (*File, error) {
	path := strings.TrimPrefix(strings.TrimSpace(ref), "file://")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return &File{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}
