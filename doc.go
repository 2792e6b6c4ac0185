// Package gridpad provides directional-pad navigation over a dataset of
// discrete positions.
//
// The pad owns a pose (horizontal index, vertical index, facing) on a grid
// of valid combinations enumerated from a sqlite dataset. Arrow input
// translates the pose along its current facing or turns it in 45-degree
// increments; a move commits only when the computed target exists in the
// dataset, and each committed move marks the matching record as the active
// selection.
//
// # Usage
//
// First, run setup to create the config file and seed a demo grid:
//
//	gridpad setup
//
// Then start the interactive pad:
//
//	gridpad run
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/gridpad: CLI with setup, run and info commands
//   - pkg/nav: pose, position table and navigator
//   - pkg/dataset: sqlite-backed position grid and selection store
//   - pkg/pad: control loop and configuration
package gridpad
