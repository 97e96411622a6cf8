package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"
	_ "golang.org/x/image/webp"

	"newssaar/backend/internal/config"
	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/model"
	"newssaar/backend/internal/network"
)

const (
	placeholderWidth  = 640
	placeholderHeight = 360
)

var (
	ErrInvalidURL      = fmt.Errorf("invalid URL")
	ErrInvalidProtocol = fmt.Errorf("invalid protocol")
	ErrFetchFailed     = fmt.Errorf("fetch failed")
	ErrNotImage        = fmt.Errorf("not a decodable image")
)

// ImageFetcher downloads raw image bytes.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// ImageFetcherFunc adapts a function to ImageFetcher.
type ImageFetcherFunc func(ctx context.Context, imageURL string) ([]byte, error)

func (f ImageFetcherFunc) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return f(ctx, imageURL)
}

type PosterService interface {
	// Resolve never fails: any problem yields the placeholder.
	Resolve(ctx context.Context, imageURL string) model.Poster
	Placeholder() model.Poster
}

type posterService struct {
	fetcher     ImageFetcher
	placeholder model.Poster
}

// NewPosterService resolves posters through a browser-fingerprinted azuretls session.
func NewPosterService(clientFactory *network.ClientFactory, timeout time.Duration, placeholder model.Poster) PosterService {
	return NewPosterServiceWithFetcher(&azureImageFetcher{clientFactory: clientFactory, timeout: timeout}, placeholder)
}

func NewPosterServiceWithFetcher(fetcher ImageFetcher, placeholder model.Poster) PosterService {
	placeholder.Placeholder = true
	return &posterService{fetcher: fetcher, placeholder: placeholder}
}

func (s *posterService) Placeholder() model.Poster {
	return s.placeholder
}

func (s *posterService) Resolve(ctx context.Context, imageURL string) model.Poster {
	if strings.TrimSpace(imageURL) == "" {
		return s.placeholder
	}
	if err := validateHTTPURL(imageURL); err != nil {
		logger.Debug("poster url rejected", "module", "service", "action", "resolve", "resource", "poster", "result", "failed", "error", err)
		return s.placeholder
	}

	data, err := s.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		logger.Warn("poster fetch failed", "module", "service", "action", "resolve", "resource", "poster", "result", "failed", "host", hostOf(imageURL), "error", err)
		return s.placeholder
	}

	poster, err := DecodePoster(data)
	if err != nil {
		logger.Warn("poster decode failed", "module", "service", "action", "resolve", "resource", "poster", "result", "failed", "host", hostOf(imageURL), "error", err)
		return s.placeholder
	}
	return poster
}

// DecodePoster accepts JPEG, PNG, GIF and WebP bytes.
func DecodePoster(data []byte) (model.Poster, error) {
	if len(data) == 0 {
		return model.Poster{}, ErrNotImage
	}
	// Full decode; a valid header over a truncated body is rejected.
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return model.Poster{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return model.Poster{}, ErrNotImage
	}
	return model.Poster{
		Data:        data,
		ContentType: "image/" + format,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// LoadPlaceholder reads the placeholder image from path, or generates a grey
// 640x360 PNG when path is empty or not a decodable image.
func LoadPlaceholder(path string) model.Poster {
	if path != "" {
		poster, err := loadPosterFile(path)
		if err == nil {
			poster.Placeholder = true
			return poster
		}
		logger.Warn("placeholder load failed", "module", "service", "action", "load", "resource", "poster", "result", "failed", "path", path, "error", err)
	}
	return DefaultPlaceholder()
}

func loadPosterFile(path string) (model.Poster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Poster{}, err
	}
	return DecodePoster(data)
}

// DefaultPlaceholder renders a flat grey PNG.
func DefaultPlaceholder() model.Poster {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	grey := color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	for y := 0; y < placeholderHeight; y++ {
		for x := 0; x < placeholderWidth; x++ {
			img.SetRGBA(x, y, grey)
		}
	}
	var buf bytes.Buffer
	// Encoding an in-memory RGBA image cannot fail.
	_ = png.Encode(&buf, img)
	return model.Poster{
		Data:        buf.Bytes(),
		ContentType: "image/png",
		Width:       placeholderWidth,
		Height:      placeholderHeight,
		Placeholder: true,
	}
}

func validateHTTPURL(imageURL string) error {
	parsedURL, err := url.Parse(imageURL)
	if err != nil || parsedURL.Host == "" {
		return ErrInvalidURL
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return ErrInvalidProtocol
	}
	return nil
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Host
}

type azureImageFetcher struct {
	clientFactory *network.ClientFactory
	timeout       time.Duration
}

func (f *azureImageFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	session := f.clientFactory.NewAzureSession(ctx, f.timeout)
	defer session.Close()

	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return nil, ErrInvalidURL
	}

	headers := azuretls.OrderedHeaders{
		{"accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8"},
		{"accept-language", "en-US,en;q=0.9"},
		{"referer", parsedURL.Scheme + "://" + parsedURL.Host + "/"},
		{"sec-ch-ua", config.ChromeSecChUa},
		{"sec-ch-ua-mobile", "?0"},
		{"sec-ch-ua-platform", `"Windows"`},
		{"sec-fetch-dest", "image"},
		{"sec-fetch-mode", "no-cors"},
		{"sec-fetch-site", "cross-site"},
		{"user-agent", config.ChromeUserAgent},
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            imageURL,
		OrderedHeaders: headers,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrFetchFailed, resp.StatusCode)
	}
	return resp.Body, nil
}
