package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// Upload encodes content as the multipart form file "file" with the given
// name.
//
// The form is returned as a buffer together with the HTTP request headers.
func Upload(t *testing.T, name string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	require.Nil(t, err)

	_, err = w.Write(content)
	require.Nil(t, err)

	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
