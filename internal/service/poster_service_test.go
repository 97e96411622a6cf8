package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newssaar/backend/internal/service"
	servicemock "newssaar/backend/internal/service/mock"
)

func encodedPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodedJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestPosterService_ResolvesImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := encodedJPEG(t, 8, 4)
	fetcher := servicemock.NewMockImageFetcher(ctrl)
	fetcher.EXPECT().FetchImage(gomock.Any(), "https://img.example.com/a.jpg").Return(data, nil)

	svc := service.NewPosterServiceWithFetcher(fetcher, service.DefaultPlaceholder())
	poster := svc.Resolve(context.Background(), "https://img.example.com/a.jpg")
	require.False(t, poster.Placeholder)
	require.Equal(t, "image/jpeg", poster.ContentType)
	require.Equal(t, 8, poster.Width)
	require.Equal(t, 4, poster.Height)
	require.Equal(t, data, poster.Data)
}

func TestPosterService_PlaceholderOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := servicemock.NewMockImageFetcher(ctrl)
	fetcher.EXPECT().FetchImage(gomock.Any(), "https://img.example.com/down.jpg").Return(nil, errors.New("connection reset"))
	fetcher.EXPECT().FetchImage(gomock.Any(), "https://img.example.com/page.html").Return([]byte("<html>not an image</html>"), nil)
	fetcher.EXPECT().FetchImage(gomock.Any(), "https://img.example.com/empty.jpg").Return([]byte{}, nil)

	placeholder := service.DefaultPlaceholder()
	svc := service.NewPosterServiceWithFetcher(fetcher, placeholder)

	for _, u := range []string{
		"",
		"   ",
		"ftp://img.example.com/a.jpg",
		"not a url",
		"https://img.example.com/down.jpg",
		"https://img.example.com/page.html",
		"https://img.example.com/empty.jpg",
	} {
		poster := svc.Resolve(context.Background(), u)
		require.True(t, poster.Placeholder, "url %q", u)
		require.Equal(t, placeholder.Data, poster.Data, "url %q", u)
	}
	require.True(t, svc.Placeholder().Placeholder)
}

func TestDefaultPlaceholder(t *testing.T) {
	poster := service.DefaultPlaceholder()
	require.True(t, poster.Placeholder)
	require.Equal(t, "image/png", poster.ContentType)
	require.Equal(t, 640, poster.Width)
	require.Equal(t, 360, poster.Height)

	decoded, err := service.DecodePoster(poster.Data)
	require.NoError(t, err)
	require.Equal(t, "image/png", decoded.ContentType)
}

func TestLoadPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_image.png")
	require.NoError(t, os.WriteFile(path, encodedPNG(t, 3, 2), 0o644))

	poster := service.LoadPlaceholder(path)
	require.True(t, poster.Placeholder)
	require.Equal(t, 3, poster.Width)
	require.Equal(t, 2, poster.Height)

	fallback := service.LoadPlaceholder(filepath.Join(dir, "missing.png"))
	require.Equal(t, 640, fallback.Width)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))
	require.Equal(t, 640, service.LoadPlaceholder(bad).Width)

	require.Equal(t, 640, service.LoadPlaceholder("").Width)
}

func TestDecodePoster_RejectsGarbage(t *testing.T) {
	_, err := service.DecodePoster([]byte("GIF89a-but-not-really"))
	require.ErrorIs(t, err, service.ErrNotImage)

	_, err = service.DecodePoster(nil)
	require.ErrorIs(t, err, service.ErrNotImage)
}

func TestDecodePoster_RejectsTruncatedBody(t *testing.T) {
	full := encodedPNG(t, 50, 50)
	// Signature and IHDR survive, so the header still decodes.
	truncated := full[:40]

	_, _, err := image.DecodeConfig(bytes.NewReader(truncated))
	require.NoError(t, err)

	_, err = service.DecodePoster(truncated)
	require.ErrorIs(t, err, service.ErrNotImage)

	jpg := encodedJPEG(t, 16, 16)
	_, err = service.DecodePoster(jpg[:len(jpg)/2])
	require.ErrorIs(t, err, service.ErrNotImage)
}

func TestPosterService_PlaceholderOnTruncatedImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	truncated := encodedPNG(t, 50, 50)[:40]
	fetcher := servicemock.NewMockImageFetcher(ctrl)
	fetcher.EXPECT().FetchImage(gomock.Any(), "https://img.example.com/cut.png").Return(truncated, nil)

	placeholder := service.DefaultPlaceholder()
	svc := service.NewPosterServiceWithFetcher(fetcher, placeholder)
	poster := svc.Resolve(context.Background(), "https://img.example.com/cut.png")
	require.True(t, poster.Placeholder)
	require.Equal(t, placeholder.Data, poster.Data)
}
