// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestParseVerbosity(t *testing.T) {
	cases := map[string]Level{
		"":        LevelWarn,
		"normal":  LevelWarn,
		"QUIET":   levelOff,
		"verbose": LevelInfo,
		"debug":   LevelDebug,
	}
	for in, want := range cases {
		got, err := ParseVerbosity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseVerbosity("loud")
	require.Error(t, err)
}

func TestLogger_FormatAndThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New("driver", &buf, LevelInfo)
	l.now = fixedClock

	l.Debugf("hidden %d", 1)
	l.Infof("loaded %s", "matrix1.txt")
	l.Errorf("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[2024-03-01 12:30:00.000] [driver] [INFO] loaded matrix1.txt", lines[0])
	assert.Equal(t, "[2024-03-01 12:30:00.000] [driver] [ERROR] boom", lines[1])
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New("driver", &buf, LevelDebug)
	l.With("codec").Warnf("slow")
	assert.Contains(t, buf.String(), "[codec] [WARN] slow")
}

func TestLogger_Discard(t *testing.T) {
	l := Discard()
	l.Errorf("nothing")
	require.NoError(t, l.Close())
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := NewFile("driver", path, LevelDebug)
	require.NoError(t, err)
	l.Infof("hello")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "Close is idempotent")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[driver] [INFO] hello")

	_, err = NewFile("driver", filepath.Join(t.TempDir(), "missing", "x.log"), LevelDebug)
	require.Error(t, err)
}

func TestSessionID(t *testing.T) {
	id := GetSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, Discard().SessionID())
}
