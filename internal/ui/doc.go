// Package ui holds the color themes shared by the CLI output, the usage
// message and the sweep dashboard.
package ui
