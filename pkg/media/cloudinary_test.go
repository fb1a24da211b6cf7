package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudinary_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "unsigned", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "selfie.jpg", header.Filename)
		assert.Equal(t, []byte("jpeg-bytes"), data)

		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/selfie.jpg"}`))
	}))
	defer srv.Close()

	c := NewCloudinary("demo", "unsigned")
	c.BaseURL = srv.URL
	url, err := c.Upload(context.Background(), "selfie.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/selfie.jpg", url)
}

func TestCloudinary_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	c := NewCloudinary("demo", "missing")
	c.BaseURL = srv.URL
	_, err := c.Upload(context.Background(), "selfie.jpg", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestCloudinary_NotConfigured(t *testing.T) {
	_, err := NewCloudinary("", "").Upload(context.Background(), "selfie.jpg", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
