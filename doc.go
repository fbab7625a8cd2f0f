// Package roundicon applies a macOS-style rounded-rectangle alpha mask to a
// raster image.
//
// The corner radius is given as a percentage of the smaller image dimension.
// A coverage mask is rasterized for the full canvas, the source colors are
// copied onto a new NRGBA buffer and the mask replaces its alpha channel. The
// result is always encoded as PNG. Everything happens in memory apart from the
// file helpers; no network or GPU is required.
package roundicon
