// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/sketch"
)

// EncodePNG writes the surface to w as PNG.
func (d *Device) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, d.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the surface to a PNG file.
func (d *Device) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := d.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	sketch.Logger().Info("raster: PNG written", "path", path, "width", d.Width(), "height", d.Height())
	return nil
}
