// Package processor contains the command-line workflow of kirlot. It
// converts single texts, files, stdin and batch files, checks batch
// expectations, exports CSV results and manages the conversion history.
// This package serves as the coordinator between all other components.
package processor
