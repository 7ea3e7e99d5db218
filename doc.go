// Package runlabel labels the connected foreground regions of 2-D rasters
// using run-length encoding and a union-find forest over the runs.
//
// 🚀 What is runlabel?
//
//	A small, allocation-conscious library that brings together:
//		• Grids: a generic dense raster with image, gonum and OpenCV interop
//		• Labeling: 4-connected region labeling with area or count limits
//		• Regions: area and bounding box per kept label, largest first
//		• Reference: a BFS flood-fill labeler used for cross-checking
//
// Under the hood, everything is organized under these subpackages:
//
//	raster/           Grid[T], Sample/Label constraints, image.Image and gonum conversions
//	raster/gocvmat/   gocv.Mat ⇄ Grid conversion
//	labeling/         run extraction, adjacency forest, label assignment, rendering
//	gridgraph/        BFS connected components on a Grid, the reference labeler
//	cmd/runlabel/     command-line front end (image in, label image + JSON out)
//
// Quick example:
//
//	src, _ := raster.FromRows([][]uint8{
//		{1, 1, 0, 3},
//		{0, 1, 0, 3},
//	})
//	labels, regions, _ := labeling.Label(src, labeling.WithRegionCount(1))
//	// labels: [1 1 0 0] [0 1 0 0]; regions[0].Area == 3
//
// Pixels touch only through a shared edge; diagonal neighbours belong to
// different regions.
package runlabel
