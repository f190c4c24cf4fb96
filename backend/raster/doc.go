// Package raster draws frames into an image with the gg software
// rasteriser and writes them as PNG.
//
//	r, err := raster.New(640, 480)
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	if err := r.Render(ui.Draw()); err != nil {
//		return err
//	}
//	return r.SavePNG("frame.png")
package raster
