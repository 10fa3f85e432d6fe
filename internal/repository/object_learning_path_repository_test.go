package repository

import (
	"bufio"
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var s3ModTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// s3Server is an in-memory, path-style S3 endpoint covering the calls the
// object store makes.
type s3Server struct {
	bucket string

	mu       sync.Mutex
	objects  map[string][]byte
	requests int
	denied   bool
}

func newS3Server(bucket string) *s3Server {
	return &s3Server{bucket: bucket, objects: make(map[string][]byte)}
}

func (s *s3Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if s.denied {
		writeS3Error(w, r, http.StatusForbidden, "AccessDenied")
		return
	}
	if bucket != s.bucket {
		writeS3Error(w, r, http.StatusNotFound, "NoSuchBucket")
		return
	}
	if key == "" {
		if r.Method == http.MethodGet {
			s.list(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, err := readS3Body(r)
		if err != nil {
			writeS3Error(w, r, http.StatusBadRequest, "IncompleteBody")
			return
		}
		s.objects[key] = body
		w.Header().Set("ETag", etag(body))
		w.WriteHeader(http.StatusOK)
	case http.MethodGet, http.MethodHead:
		body, ok := s.objects[key]
		if !ok {
			writeS3Error(w, r, http.StatusNotFound, "NoSuchKey")
			return
		}
		h := w.Header()
		h.Set("Content-Type", "application/json")
		h.Set("Content-Length", strconv.Itoa(len(body)))
		h.Set("ETag", etag(body))
		h.Set("Last-Modified", s3ModTime.Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(body)
		}
	case http.MethodDelete:
		delete(s.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeS3Error(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func (s *s3Server) list(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
	fmt.Fprintf(&b, "<Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>", s.bucket, prefix, len(keys))
	for _, k := range keys {
		fmt.Fprintf(&b, "<Contents><Key>%s</Key><LastModified>%s</LastModified><ETag>%s</ETag><Size>%d</Size><StorageClass>STANDARD</StorageClass></Contents>",
			k, s3ModTime.Format(time.RFC3339), etag(s.objects[k]), len(s.objects[k]))
	}
	b.WriteString("</ListBucketResult>")

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, b.String())
}

func (s *s3Server) put(key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
}

func (s *s3Server) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *s3Server) deny() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied = true
}

func writeS3Error(w http.ResponseWriter, r *http.Request, status int, code string) {
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource><RequestId>1</RequestId></Error>`,
		code, code, r.URL.Path)
}

// readS3Body also accepts aws-chunked uploads.
func readS3Body(r *http.Request) ([]byte, error) {
	if r.Header.Get("X-Amz-Decoded-Content-Length") == "" {
		return io.ReadAll(r.Body)
	}
	br := bufio.NewReader(r.Body)
	var out []byte
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, err
		}
		sizeHex, _, _ := strings.Cut(strings.TrimSpace(line), ";")
		n, err := strconv.ParseInt(sizeHex, 16, 64)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
		chunk := make([]byte, n)
		if _, err := io.ReadFull(br, chunk); err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		if _, err := br.ReadString('\n'); err != nil {
			return nil, err
		}
	}
}

func etag(body []byte) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%x", md5.Sum(body)))
}

func newObjectStore(t *testing.T) (*ObjectLearningPathStore, *s3Server) {
	t.Helper()
	backend := newS3Server("learning-paths")
	srv := httptest.NewTLSServer(backend)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	client, err := minio.New(u.Host, &minio.Options{
		Creds:        credentials.NewStaticV4("test-access", "test-secret", ""),
		Secure:       true,
		Transport:    srv.Client().Transport,
		Region:       "us-east-1",
		BucketLookup: minio.BucketLookupPath,
	})
	require.NoError(t, err)
	return NewObjectLearningPathStore(client, backend.bucket, nil), backend
}

func TestObjectStoreContract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) LearningPathStore {
		s, _ := newObjectStore(t)
		return s
	})
}

func TestObjectStoreKeys(t *testing.T) {
	id := "0190b6a2-0000-7000-8000-000000000000"
	assert.Equal(t, "learning-paths/"+id+".json", objectKey(id))
	assert.Equal(t, id, idFromKey(objectKey(id)))

	assert.True(t, validID(id))
	assert.False(t, validID(""))
	assert.False(t, validID("../../etc/passwd"))
	assert.False(t, validID("abc"))

	assert.True(t, isNoSuchKey(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNoSuchKey(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNoSuchKey(errors.New("boom")))
}

func TestObjectStoreInvalidIDsNeverReachBackend(t *testing.T) {
	ctx := context.Background()
	s, backend := newObjectStore(t)
	assert.Equal(t, "minio", s.Mode())

	_, err := s.Get(ctx, "../secrets")
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := s.Delete(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, 0, backend.requestCount())
}

func TestObjectStoreQuarantinesInvalidObjects(t *testing.T) {
	ctx := context.Background()
	s, backend := newObjectStore(t)

	good, err := s.Create(ctx, samplePath("good"))
	require.NoError(t, err)

	badID := "ffffffff-ffff-7fff-bfff-ffffffffffff"
	backend.put(objectKey(badID), []byte(`{"path_title":"old shape","weekly":"nope"}`))

	list, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, good, list[0].ID)

	_, err = s.Get(ctx, badID)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestObjectStoreListStopsAtLimit(t *testing.T) {
	ctx := context.Background()
	s, _ := newObjectStore(t)

	var ids []string
	for i := 0; i < 4; i++ {
		id, err := s.Create(ctx, samplePath(fmt.Sprintf("path %d", i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[0], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
}

func TestObjectStoreBackendErrors(t *testing.T) {
	ctx := context.Background()
	s, backend := newObjectStore(t)
	id, err := s.Create(ctx, samplePath("stored"))
	require.NoError(t, err)
	backend.deny()

	var se *StoreError

	_, err = s.Get(ctx, id)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "get", se.Op)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = s.Delete(ctx, id)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "delete", se.Op)

	_, err = s.List(ctx, 10)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list", se.Op)

	_, err = s.Create(ctx, samplePath("denied"))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create", se.Op)
}
