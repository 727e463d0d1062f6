package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	var resp *http.Response
	if args.Get(0) != nil {
		resp = args.Get(0).(*http.Response)
	}
	return resp, args.Error(1)
}

func httpResponse(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func TestFetch(t *testing.T) {
	t.Run("debería devolver los bytes con status 200", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)
		payload := []byte{0x89, 0x50, 0x4e, 0x47}

		mockClient.On("Do", mock.Anything).Return(httpResponse(http.StatusOK, payload), nil)

		data := fetcher.Fetch(context.Background(), "http://x/a.png")

		assert.Equal(t, payload, data)
		mockClient.AssertExpectations(t)
	})

	t.Run("debería devolver nil con status distinto de 200", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)

		mockClient.On("Do", mock.Anything).Return(httpResponse(http.StatusNotFound, nil), nil)

		data := fetcher.Fetch(context.Background(), "http://x/missing.png")

		assert.Nil(t, data)
	})

	t.Run("debería devolver nil ante un fallo de transporte", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)

		mockClient.On("Do", mock.Anything).Return(nil, fmt.Errorf("context deadline exceeded"))

		data := fetcher.Fetch(context.Background(), "http://x/slow.png")

		assert.Nil(t, data)
	})

	t.Run("debería devolver nil con una URL inválida", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)

		data := fetcher.Fetch(context.Background(), "http://x/\x7f")

		assert.Nil(t, data)
		mockClient.AssertNotCalled(t, "Do")
	})
}

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"http://x/a.png", "image/png"},
		{"http://x/A.PNG", "image/png"},
		{"http://x/anim.gif", "image/gif"},
		{"http://x/modern.webp", "image/webp"},
		{"http://x/photo.jpg", "image/jpeg"},
		{"http://x/photo.jpeg", "image/jpeg"},
		{"http://x/sin-extension", "image/jpeg"},
		{"http://x/a.png?raw=true", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectMIMEType(tt.url))
		})
	}
}

func TestCollect(t *testing.T) {
	t.Run("debería devolver nil sin imágenes en la descripción", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)

		parts := fetcher.Collect(context.Background(), "sin imágenes acá")

		assert.Nil(t, parts)
		mockClient.AssertNotCalled(t, "Do")
	})

	t.Run("debería limitar las descargas a 3 imágenes", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)

		description := `![1](http://x/1.png) ![2](http://x/2.png) ![3](http://x/3.png) ![4](http://x/4.png)`
		mockClient.On("Do", mock.Anything).Return(httpResponse(http.StatusOK, []byte("img")), nil).Times(3)

		parts := fetcher.Collect(context.Background(), description)

		assert.Len(t, parts, 3)
		mockClient.AssertNumberOfCalls(t, "Do", 3)
	})

	t.Run("debería saltear las descargas fallidas y etiquetar el MIME", func(t *testing.T) {
		mockClient := &MockHTTPClient{}
		fetcher := NewFetcherWithClient(mockClient)

		description := `![ok](http://x/ok.webp) ![caida](http://x/caida.png)`
		mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.URL.String() == "http://x/ok.webp"
		})).Return(httpResponse(http.StatusOK, []byte("webp-data")), nil)
		mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.URL.String() == "http://x/caida.png"
		})).Return(httpResponse(http.StatusInternalServerError, nil), nil)

		parts := fetcher.Collect(context.Background(), description)

		assert.Len(t, parts, 1)
		assert.Equal(t, "image/webp", parts[0].MIMEType)
		assert.Equal(t, []byte("webp-data"), parts[0].Data)
	})
}
