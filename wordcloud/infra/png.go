package infra

import (
	"image"
	"image/png"
	"os"
)

// PNGWriter implementa domain.ImageWriter.
type PNGWriter struct {
	CompressionLevel png.CompressionLevel
}

func (w PNGWriter) Write(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: w.CompressionLevel}
	if err := enc.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
