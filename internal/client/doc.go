// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

// Package client implements the CLI client runtime.
//
// It wires the local cache, the server adapter, and the client services
// into a single process, and dispatches the vault subcommands. Every
// command that touches the vault authenticates first; the master secret is
// read from the terminal, used in memory, and never written anywhere.
package client
