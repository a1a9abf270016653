// Package magpie holds suite-level metadata for the magpie tool.
package magpie

// Version is the current magpie release.
const Version = "0.1.0"
