// Package render turns a tracked skeleton into draw primitives (joint discs
// and bone segments) in display pixel coordinates, and can rasterise those
// primitives onto an image.
//
// Render is a pure function of its inputs; it keeps no draw list between
// frames.
package render
