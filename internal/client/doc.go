// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the chat service, and the background
// synchronization tasks into a single process lifecycle.
package client
