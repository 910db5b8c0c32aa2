package downloader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsClip(t *testing.T) {
	assert.True(t, isClip("https://www.youtube.com/watch?v=abc123"))
	assert.True(t, isClip("https://youtu.be/abc123"))
	assert.False(t, isClip("https://i.scdn.co/image/abc123"))
}

func TestDownloadBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("payload"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "blob.jpg")
	channel := make(chan []byte, 1)
	assert.NoError(t, Download(server.URL, path, nil, channel))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, []byte("payload"), <-channel)
}

type upperProcessor struct{}

func (upperProcessor) Do(data []byte) ([]byte, error) {
	return []byte("PAYLOAD"), nil
}

func TestDownloadBlobProcessed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("payload"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "blob.jpg")
	assert.NoError(t, Download(server.URL, path, upperProcessor{}))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("PAYLOAD"), data)
}

func TestDownloadBlobFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	assert.Error(t, Download(server.URL, filepath.Join(t.TempDir(), "blob.jpg"), nil))
}

func TestDownloadClip(t *testing.T) {
	patches := gomonkey.ApplyMethod(reflect.TypeOf(&exec.Cmd{}), "CombinedOutput",
		func(*exec.Cmd) ([]byte, error) {
			return []byte{}, nil
		})
	defer patches.Reset()

	assert.NoError(t, Download("https://youtu.be/abc123", filepath.Join(t.TempDir(), "clip.mp3"), nil))
}
