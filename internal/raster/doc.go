// Package raster converts raw sensor frames (colour, depth, infrared) into a
// single display pixel format: 32-bit BGR with an unused fourth byte.
//
// Every conversion allocates a fresh PixelBuffer and never retains the input
// frame, so calls are reentrant and may run in parallel on distinct frames.
package raster
