package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const testBucket = "test-bucket"

// mockRoundTripper fakes the GET/PUT/HEAD subset of S3 used by Backend,
// keyed by object key. Requests are path-style: /bucket/key.
type mockRoundTripper struct {
	mu    sync.Mutex
	state map[string][]byte
	puts  int
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch req.Method {
	case http.MethodHead:
		if parts[0] == testBucket && key == "" {
			return response(http.StatusOK, nil), nil
		}
		return response(http.StatusNotFound, nil), nil
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if dec, ok := decodeChunked(body); ok {
			body = dec
		}
		m.state[key] = body
		m.puts++
		return response(http.StatusOK, nil), nil
	case http.MethodGet:
		if body, ok := m.state[key]; ok {
			return response(http.StatusOK, body), nil
		}
		resp := response(http.StatusNotFound, []byte(
			`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
		resp.Header.Set("Content-Type", "application/xml")
		return resp, nil
	}
	return response(http.StatusNotImplemented, nil), nil
}

func response(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Header:        http.Header{"Content-Length": {strconv.Itoa(len(body))}},
	}
}

// decodeChunked unwraps a single-chunk aws-chunked body: <hex>\r\n<payload>\r\n0\r\n...
func decodeChunked(b []byte) ([]byte, bool) {
	parts := strings.Split(string(b), "\r\n")
	if len(parts) < 3 {
		return nil, false
	}
	n, err := strconv.ParseInt(parts[0], 16, 64)
	if err != nil || n <= 0 || int64(len(parts[1])) != n || parts[2] != "0" {
		return nil, false
	}
	return []byte(parts[1]), true
}

func newMockBackend(t *testing.T) (*Backend, *mockRoundTripper) {
	t.Helper()
	rt := &mockRoundTripper{state: make(map[string][]byte)}
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	if err != nil {
		t.Fatalf("cfg: %v", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("https://mock.s3.local")
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
	})
	return NewWithClient(client, testBucket), rt
}

func TestBackend_ReadMissingSlot(t *testing.T) {
	b, _ := newMockBackend(t)
	got, err := b.Read(context.Background(), "codis")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil payload, got %q", got)
	}
}

func TestBackend_WriteThenRead(t *testing.T) {
	b, rt := newMockBackend(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"a1","orders":["OF-1"]}]`)
	if err := b.Write(ctx, "codis", payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, ok := rt.state["codis.json"]; !ok {
		t.Fatalf("expected object codis.json, have %v", rt.state)
	}

	got, err := b.Read(ctx, "codis")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

func TestBackend_Ping(t *testing.T) {
	b, _ := newMockBackend(t)
	if err := b.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	other := NewWithClient(b.client, "missing-bucket")
	if err := other.Ping(context.Background()); err == nil {
		t.Fatal("expected error for missing bucket")
	}
}

func TestNew_RequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty bucket")
	}
}
