package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Config holds image processing configuration
type Config struct {
	MaxWidth    int // max width for the full-size variant
	MaxHeight   int // max height for the full-size variant
	ThumbWidth  int
	ThumbHeight int
	Quality     int // JPEG quality 1-100
}

// DefaultConfig returns processing defaults for profile photos
func DefaultConfig() Config {
	return Config{
		MaxWidth:    2000,
		MaxHeight:   2000,
		ThumbWidth:  300,
		ThumbHeight: 400,
		Quality:     85,
	}
}

// ProcessedImage holds the result of processing one upload
type ProcessedImage struct {
	Full      []byte
	Thumbnail []byte
	Width     int
	Height    int
	Format    string
}

// Processor resizes and re-encodes profile photos
type Processor struct {
	cfg Config
}

// NewProcessor creates an image processor
func NewProcessor(cfg Config) *Processor {
	return &Processor{cfg: cfg}
}

// Process decodes an uploaded image, downsizes it if needed and produces
// a portrait thumbnail. Output is always JPEG regardless of input format.
func (p *Processor) Process(r io.Reader) (*ProcessedImage, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Downscale only, never upscale
	full := src
	if width > p.cfg.MaxWidth || height > p.cfg.MaxHeight {
		full = imaging.Fit(src, p.cfg.MaxWidth, p.cfg.MaxHeight, imaging.Lanczos)
		b := full.Bounds()
		width = b.Dx()
		height = b.Dy()
	}

	thumb := imaging.Fill(src, p.cfg.ThumbWidth, p.cfg.ThumbHeight, imaging.Center, imaging.Lanczos)

	fullBytes, err := p.encode(full)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	thumbBytes, err := p.encode(thumb)
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &ProcessedImage{
		Full:      fullBytes,
		Thumbnail: thumbBytes,
		Width:     width,
		Height:    height,
		Format:    format,
	}, nil
}

func (p *Processor) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.cfg.Quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
