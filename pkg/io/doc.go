// Package io reads and writes chart documents in YAML and JSON.
//
// # Overview
//
// A document holds one or more charts. Values are nullable: a null in the
// data list is a missing point, which renders no bar, breaks the line and
// receives no label.
//
// # Format
//
//	charts:
//	  - name: sales
//	    type: mixed            # column | line | mixed | pie | doughnut | gauge
//	    title: Quarterly sales
//	    labels: [Q1, Q2, Q3, Q4]
//	    highlight: Q3          # optional highlighted column
//	    datasets:
//	      - label: units
//	        type: bar
//	        data: [10, 20, 30, 40]
//	      - label: trend
//	        type: line
//	        data: [12, null, 28, 44]
//	        pointRadius: 4     # scalar or per-point list
//
// A document may also be a single chart with the fields at the top level.
// Doughnuts accept a `center` text; arc datasets accept per-slice `colors`.
//
// # Import
//
// [ReadYAML] and [ReadJSON] decode from any io.Reader; [ImportFile] picks the
// decoder from the file extension. Decoding errors carry the
// INVALID_DOCUMENT code from [errors].
//
// # Export
//
// [WriteYAML] and [WriteJSON] write a document back out. Null values and
// per-point radii survive the round trip.
//
// [errors]: github.com/matzehuels/chartlabel/pkg/errors
package io
