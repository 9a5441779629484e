// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logMu  sync.RWMutex
	logger = defaultLogger()
)

func defaultLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(zerolog.WarnLevel).With().
		Timestamp().Str("component", "rrc").Logger()
}

// SetLogger replaces the logger used for diagnostics: discarded extension
// additions, ignored non-critical extensions and unsupported variants.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

// Logger returns the logger currently registered.
func Logger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

func logDiscardedExtensions(ie string, n int) {
	l := Logger()
	l.Debug().Str("ie", ie).Int("additions", n).
		Msg("discarded extension additions")
}

func logIgnoredNonCriticalExtension(msg string) {
	l := Logger()
	l.Debug().Str("message", msg).
		Msg("ignored non-critical extension")
}

func logUnsupported(kind string, v int) {
	l := Logger()
	l.Warn().Str("kind", kind).Int("value", v).
		Msg("not handling unsupported variant")
}
