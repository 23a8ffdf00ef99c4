// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfoContainsVersionAndCommit(t *testing.T) {
	info := Info()
	if !strings.Contains(info, Version) {
		t.Errorf("Info() = %q, missing version %q", info, Version)
	}
	if !strings.Contains(info, GitCommit) {
		t.Errorf("Info() = %q, missing commit %q", info, GitCommit)
	}
}

func TestInfoDirtyMarker(t *testing.T) {
	saved := GitDirty
	defer func() { GitDirty = saved }()

	GitDirty = "true"
	if !strings.Contains(Info(), "-dirty") {
		t.Error("dirty build missing -dirty marker")
	}
	GitDirty = "false"
	if strings.Contains(Info(), "-dirty") {
		t.Error("clean build carries -dirty marker")
	}
}

func TestFullMentionsPlatform(t *testing.T) {
	if !strings.Contains(Full(), "Platform:") {
		t.Errorf("Full() = %q, missing platform line", Full())
	}
}
