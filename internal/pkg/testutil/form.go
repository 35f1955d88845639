package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewMultipartRequest builds a request whose multipart body holds one file part per entry of
// parts, keyed by form field name. Parts are written in field name order.
func NewMultipartRequest(t *testing.T, method, url string, parts map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := make([]string, 0, len(parts))
	for field := range parts {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		part, err := writer.CreateFormFile(field, field+".bin")
		require.NoError(t, err)

		_, err = part.Write(parts[field])
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
