// Package tui implements the live sweep dashboard: a bubbletea program that
// streams harness rows into timing sparklines, a table of recent rows and a
// header with process resource usage.
package tui
