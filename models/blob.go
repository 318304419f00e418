// Package models provides the data structures for the GitHub REST API Git blob and repository contents resources.
package models

const (
	// APIBase is the root of the GitHub REST API.
	APIBase = "https://api.github.com"
	// MediaType is the recommended value of the Accept header for GitHub REST API requests.
	MediaType = "application/vnd.github+json"
)

const (
	// EncodingUTF8 marks content sent as plain text.
	EncodingUTF8 = "utf-8"
	// EncodingBase64 marks content sent as standard base64, possibly wrapped over several lines.
	EncodingBase64 = "base64"
)

// Blob represents a Git blob object, the object type used to store the contents of each file in a repository.
//
// GitHub API docs: https://docs.github.com/en/rest/git/blobs
type Blob struct {
	// SHA is the hash of the blob object.
	SHA *string `json:"sha,omitempty" yaml:"sha,omitempty"`
	// NodeID is the identifier of the blob in the GraphQL API.
	NodeID *string `json:"node_id,omitempty" yaml:"node_id,omitempty"`
	// Size is the blob size in bytes.
	Size int `json:"size" yaml:"size"`
	// URL is the REST API URL of this blob.
	URL *string `json:"url,omitempty" yaml:"url,omitempty"`
	// Content is the blob payload, encoded as described by Encoding.
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
	// Encoding is either "utf-8" or "base64".
	Encoding *string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// Header returns the value callers should send in the Accept header.
func Header() string {
	return MediaType
}

// BlobAPIBase returns the API root blob URLs are built on.
func BlobAPIBase() string {
	return APIBase
}

// BlobURL returns the URL of the blob identified by sha in the owner/name repository.
// The segments are joined as given: nothing is validated or escaped.
func BlobURL(owner, name, sha string) string {
	return APIBase + "/repos/" + owner + "/" + name + "/git/blobs/" + sha
}
