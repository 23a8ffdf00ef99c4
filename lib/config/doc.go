// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads optional YAML flag defaults for the qur
// binary.
//
// The file is named explicitly, via the --config flag or the
// QUR_CONFIG environment variable. There are no fallbacks, no
// ~/.config discovery, and no automatic file search. This ensures
// deterministic, auditable configuration with no hidden overrides.
//
// Precedence, lowest to highest: built-in defaults, config file,
// flags the user passed explicitly. The file can change a default
// without ever shadowing an explicit flag; unknown keys are rejected
// so a typo fails loudly instead of silently reverting to a built-in.
package config
