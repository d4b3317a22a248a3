package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/models"
)

func TestPhotoPath(t *testing.T) {
	key := models.LogKey{EventID: "daily-life", Date: "2024-06-05"}
	p := PhotoPath(key, models.RolePartner)

	assert.Equal(t, "dailyPhotos/daily-life/2024-06-05/partner_photo", p)
	assert.Equal(t, "/photos/dailyPhotos/daily-life/2024-06-05/partner_photo", URLFor(p))

	back, ok := PathFromURL(URLFor(p))
	assert.True(t, ok)
	assert.Equal(t, p, back)

	_, ok = PathFromURL("https://example.com/x.jpg")
	assert.False(t, ok)
}

func TestCleanPath(t *testing.T) {
	for _, p := range []string{"", "/etc/passwd", "../secret", "a/../../b", "a//b", ".."} {
		assert.ErrorIs(t, CleanPath(p), ErrInvalidPath, p)
	}
	assert.NoError(t, CleanPath("dailyPhotos/e/2024-01-01/editor_photo"))
}

func TestLocalStore(t *testing.T) {
	store := NewLocalFs(afero.NewMemMapFs())
	ctx := context.Background()
	p := "dailyPhotos/e1/2024-06-05/editor_photo"
	data := []byte("not really a jpeg")

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, p, bytes.NewReader(data), int64(len(data)), "image/jpeg"))

		rc, contentType, err := store.Get(ctx, p)
		require.NoError(t, err)
		defer rc.Close()
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, data, got)
		assert.Equal(t, "image/jpeg", contentType)
	})

	t.Run("put replaces", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, p, strings.NewReader("v2"), 2, ""))
		rc, contentType, err := store.Get(ctx, p)
		require.NoError(t, err)
		defer rc.Close()
		got, _ := io.ReadAll(rc)
		assert.Equal(t, "v2", string(got))
		assert.Equal(t, defaultContentType, contentType)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, p))
		require.NoError(t, store.Delete(ctx, p))
		_, _, err := store.Get(ctx, p)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects escaping paths", func(t *testing.T) {
		err := store.Put(ctx, "../x", strings.NewReader("x"), 1, "")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})
}

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	failPut error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut != nil {
		return nil, f.failPut
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(b)),
		ContentType: aws.String(f.types[aws.ToString(in.Key)]),
	}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	fake := newFakeS3()
	store := &S3Store{client: fake, bucket: "photos"}
	ctx := context.Background()
	p := "dailyPhotos/e1/2024-06-05/partner_photo"

	require.NoError(t, store.Put(ctx, p, strings.NewReader("png"), 3, "image/png"))
	assert.Equal(t, []byte("png"), fake.objects[p])

	rc, contentType, err := store.Get(ctx, p)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, p))
	_, _, err = store.Get(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)

	fake.failPut = errors.New("network down")
	err = store.Put(ctx, p, strings.NewReader("png"), 3, "image/png")
	assert.ErrorContains(t, err, "network down")
}

func TestNewS3RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}
