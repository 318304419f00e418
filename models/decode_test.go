package models_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/isometry/gh-content-models/internal/helpers"
	"github.com/isometry/gh-content-models/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlob(t *testing.T) {
	blob, err := models.DecodeBlob([]byte(`{"sha":"44b4fc6d56897b048c772eb4087f854f46256132","size":3}`))
	require.NoError(t, err)
	assert.Equal(t, "44b4fc6d56897b048c772eb4087f854f46256132", blob.GetSHA())
	assert.Equal(t, 3, blob.GetSize())

	_, err = models.DecodeBlob([]byte(`{"size":"three"}`))
	require.Error(t, err)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.Contains(t, err.Error(), "failed to unmarshal blob")
}

func TestDecodeFileContent(t *testing.T) {
	file, err := models.DecodeFileContent([]byte(readmePayload))
	require.NoError(t, err)
	assert.Equal(t, 5362, file.Size)
	assert.Equal(t, "3d21ec53a331a6f037a91c368710b99387d012c1", file.GetSHA())

	_, err = models.DecodeFileContent([]byte(`[]`))
	assert.Error(t, err)
}

func TestDecodeDirectoryListing(t *testing.T) {
	entries, err := models.DecodeDirectoryListing([]byte(`[{"name":"a","type":"file"},{"name":"b","type":"dir"}]`))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].GetName())
	assert.True(t, entries[1].IsDir())

	_, err = models.DecodeDirectoryListing([]byte(`{"name":"a"}`))
	assert.Error(t, err)
}

func TestDecodeDirectoryListing_Empty(t *testing.T) {
	testCases := []struct {
		Name    string
		Payload string
	}{
		{
			Name:    "null",
			Payload: `null`,
		},
		{
			Name:    "null_padded",
			Payload: " null\n",
		},
		{
			Name:    "empty_array",
			Payload: `[]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			entries, err := models.DecodeDirectoryListing([]byte(tc.Payload))
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)

			out, err := json.Marshal(entries)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(out))
		})
	}
}

func TestDecodeContents(t *testing.T) {
	testCases := []struct {
		Name        string
		Payload     string
		ExpectFile  bool
		ExpectDir   int
		ExpectError bool
	}{
		{
			Name:       "file_object",
			Payload:    "  \n" + readmePayload,
			ExpectFile: true,
		},
		{
			Name:      "directory_array",
			Payload:   `[{"name":"a","type":"file"},{"name":"b","type":"dir"}]`,
			ExpectDir: 2,
		},
		{
			Name:      "empty_directory",
			Payload:   `[]`,
			ExpectDir: 0,
		},
		{
			Name:        "blank",
			Payload:     " \t\n",
			ExpectError: true,
		},
		{
			Name:        "scalar",
			Payload:     `"README.md"`,
			ExpectError: true,
		},
		{
			Name:        "truncated_object",
			Payload:     `{"name":`,
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			file, entries, err := models.DecodeContents([]byte(tc.Payload))
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.ExpectFile {
				require.NotNil(t, file)
				assert.Nil(t, entries)
				assert.True(t, file.IsFile())
				return
			}
			assert.Nil(t, file)
			require.NotNil(t, entries)
			assert.Len(t, entries, tc.ExpectDir)
		})
	}
}

func TestDecoded(t *testing.T) {
	body := "package main\n\nfunc main() {}\n" + string(make([]byte, 64))
	encoded := base64.StdEncoding.EncodeToString([]byte(body))
	wrapped := ""
	for i := 0; i < len(encoded); i += 60 {
		wrapped += encoded[i:min(i+60, len(encoded))] + "\n"
	}

	testCases := []struct {
		Name        string
		Content     *string
		Encoding    *string
		Expected    string
		ExpectedErr error
	}{
		{
			Name:     "base64_wrapped",
			Content:  helpers.Ptr(wrapped),
			Encoding: helpers.Ptr(models.EncodingBase64),
			Expected: body,
		},
		{
			Name:     "base64_crlf",
			Content:  helpers.Ptr("aGVs\r\nbG8=\r\n"),
			Encoding: helpers.Ptr("Base64"),
			Expected: "hello",
		},
		{
			Name:     "utf8",
			Content:  helpers.Ptr("plain text"),
			Encoding: helpers.Ptr(models.EncodingUTF8),
			Expected: "plain text",
		},
		{
			Name:        "no_content",
			Encoding:    helpers.Ptr(models.EncodingBase64),
			ExpectedErr: models.ErrNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			blob := &models.Blob{Content: tc.Content, Encoding: tc.Encoding}
			file := &models.FileContent{Content: tc.Content, Encoding: tc.Encoding}

			for _, decode := range []func() ([]byte, error){blob.Decoded, file.Decoded} {
				got, err := decode()
				if tc.ExpectedErr != nil {
					assert.ErrorIs(t, err, tc.ExpectedErr)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, tc.Expected, string(got))
			}
		})
	}
}

func TestDecoded_Errors(t *testing.T) {
	testCases := []struct {
		Name     string
		Blob     *models.Blob
		Encoding string
	}{
		{
			Name: "missing_encoding",
			Blob: &models.Blob{Content: helpers.Ptr("abc")},
		},
		{
			Name:     "unknown_encoding",
			Blob:     &models.Blob{Content: helpers.Ptr("abc"), Encoding: helpers.Ptr("gzip")},
			Encoding: "gzip",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := tc.Blob.Decoded()
			var encErr *models.UnsupportedEncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, tc.Encoding, encErr.Encoding)
		})
	}

	_, err := (&models.Blob{Content: helpers.Ptr("!!!"), Encoding: helpers.Ptr(models.EncodingBase64)}).Decoded()
	require.Error(t, err)
	var corrupt base64.CorruptInputError
	assert.True(t, errors.As(err, &corrupt))

	var nilBlob *models.Blob
	_, err = nilBlob.Decoded()
	assert.ErrorIs(t, err, models.ErrNoContent)
}
