// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package contains utilities for handling platform-specific concerns,
// such as the layout of Python virtual environments (bin/ on POSIX,
// Scripts\ on Windows), spawning host commands from inside application
// sandboxes, and Windows reserved filenames that cannot be used as
// output file names.
package platform
