// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
}

func TestNewLogger(t *testing.T) {
	prev := UserLevel.Level()
	defer UserLevel.Set(prev)

	var b bytes.Buffer
	UserLevel.Set(slog.LevelInfo)
	lg := NewLogger(&b)
	lg.Debug("hidden")
	lg.Info("shown", "frames", 60)
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "frames=60")

	UserLevel.Set(slog.LevelError)
	lg.Warn("later hidden")
	assert.NotContains(t, b.String(), "later hidden")
}
