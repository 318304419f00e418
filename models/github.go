package models

import (
	"github.com/google/go-github/v84/github"
	"github.com/isometry/gh-content-models/internal/helpers"
)

// BlobFromGitHub converts a go-github blob. A missing size becomes zero.
func BlobFromGitHub(b *github.Blob) *Blob {
	if b == nil {
		return nil
	}
	return &Blob{
		SHA:      cloneString(b.SHA),
		NodeID:   cloneString(b.NodeID),
		Size:     b.GetSize(),
		URL:      cloneString(b.URL),
		Content:  cloneString(b.Content),
		Encoding: cloneString(b.Encoding),
	}
}

// ToGitHub converts the blob to its go-github counterpart, for instance to feed Git.CreateBlob.
func (b *Blob) ToGitHub() *github.Blob {
	if b == nil {
		return nil
	}
	return &github.Blob{
		SHA:      cloneString(b.SHA),
		NodeID:   cloneString(b.NodeID),
		Size:     helpers.Ptr(b.Size),
		URL:      cloneString(b.URL),
		Content:  cloneString(b.Content),
		Encoding: cloneString(b.Encoding),
	}
}

// DirectoryContentFromGitHub converts a go-github contents entry. go-github does not decode _links, so Links is nil.
func DirectoryContentFromGitHub(c *github.RepositoryContent) *DirectoryContent {
	if c == nil {
		return nil
	}
	return &DirectoryContent{
		Name:        cloneString(c.Name),
		Path:        cloneString(c.Path),
		SHA:         cloneString(c.SHA),
		Size:        c.GetSize(),
		URL:         cloneString(c.URL),
		HTMLURL:     cloneString(c.HTMLURL),
		GitURL:      cloneString(c.GitURL),
		DownloadURL: cloneString(c.DownloadURL),
		Type:        cloneString(c.Type),
	}
}

// FileContentFromGitHub converts a go-github file, keeping its body as encoded on the wire.
func FileContentFromGitHub(c *github.RepositoryContent) *FileContent {
	if c == nil {
		return nil
	}
	return &FileContent{
		DirectoryContent: *DirectoryContentFromGitHub(c),
		Content:          cloneString(c.Content),
		Encoding:         cloneString(c.Encoding),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return helpers.Ptr(*s)
}
