// Package channel holds the named detector signals of one simulated
// acquisition. All channels share a fixed sample count and a reserved
// time axis; per-sample arithmetic is available per channel or in bulk
// across every channel except the time axis.
package channel
