// seehuhn.de/go/lines - procedural line geometry for stroke rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lines

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// newNopLogger returns a logger which discards everything.  The level is
// set to panic so that callers skip formatting of debug and info entries.
func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger sets the logger used by this module and all its sub-packages.
// By default nothing is logged.  Passing nil restores the default.
//
// Levels in use:
//   - debug: per-call diagnostics (skipped scatter slots, packing results)
//   - info: lifecycle events of asset pools
//   - warn: rejected submissions
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// It is safe for concurrent use.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
