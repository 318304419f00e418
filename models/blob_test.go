package models_test

import (
	"encoding/json"
	"testing"

	"github.com/isometry/gh-content-models/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	assert.Equal(t, "application/vnd.github+json", models.Header())
}

func TestBlobAPIBase(t *testing.T) {
	assert.Equal(t, "https://api.github.com", models.BlobAPIBase())
}

func TestBlobURL(t *testing.T) {
	testCases := []struct {
		Name     string
		Owner    string
		Repo     string
		SHA      string
		Expected string
	}{
		{
			Name:     "documented_example",
			Owner:    "octocat",
			Repo:     "Hello-World",
			SHA:      "44b4fc6d56897b048c772eb4087f854f46256132",
			Expected: "https://api.github.com/repos/octocat/Hello-World/git/blobs/44b4fc6d56897b048c772eb4087f854f46256132",
		},
		{
			Name:     "empty_segments",
			Expected: "https://api.github.com/repos///git/blobs/",
		},
		{
			Name:     "reserved_characters_are_not_escaped",
			Owner:    "my org",
			Repo:     "a/b",
			SHA:      "x?y#z%20",
			Expected: "https://api.github.com/repos/my org/a/b/git/blobs/x?y#z%20",
		},
		{
			Name:     "non_sha_value",
			Owner:    "octocat",
			Repo:     "Spoon-Knife",
			SHA:      "main",
			Expected: "https://api.github.com/repos/octocat/Spoon-Knife/git/blobs/main",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := models.BlobURL(tc.Owner, tc.Repo, tc.SHA)
			assert.Equal(t, tc.Expected, got)
			assert.Equal(t, "https://api.github.com/repos/"+tc.Owner+"/"+tc.Repo+"/git/blobs/"+tc.SHA, got)
		})
	}
}

func TestBlob_RoundTrip(t *testing.T) {
	payload := `{
		"sha": "3a0f86fb8db8eea7ccbb9a95f325ddbedfb25e15",
		"node_id": "MDQ6QmxvYjNhMGY4NmZiOGRiOGVlYTdjY2JiOWE5NWYzMjVkZGJlZGZiMjVlMTU=",
		"size": 19,
		"url": "https://api.github.com/repos/octocat/example/git/blobs/3a0f86fb8db8eea7ccbb9a95f325ddbedfb25e15",
		"content": "Q29udGVudCBvZiB0aGUgYmxvYg==",
		"encoding": "base64"
	}`

	var blob models.Blob
	require.NoError(t, json.Unmarshal([]byte(payload), &blob))
	out, err := json.Marshal(&blob)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestBlob_OptionalFields(t *testing.T) {
	testCases := []struct {
		Name         string
		Payload      string
		ExpectedSize int
	}{
		{
			Name:         "size_present",
			Payload:      `{"sha":"95b966ae1c166bd92f8ae7d1c313e738c731dfc3","size":42}`,
			ExpectedSize: 42,
		},
		{
			Name:         "size_absent",
			Payload:      `{"sha":"95b966ae1c166bd92f8ae7d1c313e738c731dfc3"}`,
			ExpectedSize: 0,
		},
		{
			Name:         "nulls",
			Payload:      `{"sha":"95b966ae1c166bd92f8ae7d1c313e738c731dfc3","content":null,"encoding":null,"size":7}`,
			ExpectedSize: 7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var blob models.Blob
			require.NoError(t, json.Unmarshal([]byte(tc.Payload), &blob))
			assert.Nil(t, blob.Content)
			assert.Nil(t, blob.Encoding)
			assert.Nil(t, blob.NodeID)
			assert.Nil(t, blob.URL)
			assert.Equal(t, tc.ExpectedSize, blob.Size)
			assert.Equal(t, "95b966ae1c166bd92f8ae7d1c313e738c731dfc3", blob.GetSHA())

			out, err := json.Marshal(&blob)
			require.NoError(t, err)
			assert.NotContains(t, string(out), "content")
			assert.NotContains(t, string(out), "encoding")
			assert.Contains(t, string(out), `"size":`)
		})
	}
}
