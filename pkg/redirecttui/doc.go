// Package redirecttui renders redirect generation progress in the terminal.
//
// [GeneratorTUI] wraps a generator, forwards its events into a bubbletea
// program running [GenerateModel], and routes log output above the progress
// bar while the program runs.
package redirecttui
