// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/fileorg/pkg/organize"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	targetWidth = 15 // Width for destination folder or original
	statusWidth = 12 // Width for status text
)

// 🎯 Logger prints one console line per notification and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	counts  map[organize.Kind]int
}

var _ organize.Sink = (*Logger)(nil)

// 🏭 NewWithZerolog creates a logger that prints to console and mirrors notifications to zlog
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		counts:  make(map[organize.Kind]int),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatNotification formats a notification for display
func formatNotification(n organize.Notification) string {
	var symbol rune
	var symbolColor color.Attribute
	var target, status string

	switch n.Kind {
	case organize.KindMoved:
		symbol, symbolColor = '✓', color.FgGreen
		target, status = n.Target+"/", "MOVED"
	case organize.KindWouldMove:
		symbol, symbolColor = '○', color.FgBlue
		target, status = n.Target+"/", "WOULD MOVE"
	case organize.KindDuplicate:
		symbol, symbolColor = '≡', color.FgYellow
		target, status = "= "+n.Target, "DUPLICATE"
	case organize.KindInvalidDirectory:
		symbol, symbolColor = '✗', color.FgRed
		target, status = "-", "INVALID DIR"
	default:
		symbol, symbolColor = '✗', color.FgRed
		target, status = "-", "FAILED"
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, n.Name),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", targetWidth, target)),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, status)))

	if n.Err != nil {
		line += " " + color.New(color.Faint).Sprint(n.Err.Error())
	}

	return strings.TrimRight(line, " ")
}

// 📝 Notify logs a notification emitted by an organize pass
func (l *Logger) Notify(ctx context.Context, n organize.Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[n.Kind]++

	fmt.Fprintln(l.console, formatNotification(n))

	event := l.zlog.Info()
	if n.Kind.IsError() {
		event = l.zlog.Error().Err(n.Err)
	}
	event.
		Str("file", n.Name).
		Str("target", n.Target).
		Str("kind", n.Kind.String()).
		Msg("file decision")
}

// Count returns how many notifications of kind k were logged
func (l *Logger) Count(k organize.Kind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[k]
}

// 📊 Summary renders the tally of a pass as a table
func (l *Logger) Summary(s organize.Summary, dryRun bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	moveLabel, moveCount := "moved", s.Moved
	if dryRun {
		moveLabel, moveCount = "would move", s.WouldMove
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"result", "files"},
		{moveLabel, strconv.Itoa(moveCount)},
		{"duplicates", strconv.Itoa(s.Duplicates)},
		{"folders", strconv.Itoa(len(s.Folders))},
	}).Srender()
	if err != nil {
		return err
	}

	fmt.Fprintf(l.console, "\n%s\n", table)

	l.zlog.Info().
		Int("moved", s.Moved).
		Int("would_move", s.WouldMove).
		Int("duplicates", s.Duplicates).
		Strs("folders", s.Folders).
		Int("total", s.Total()).
		Bool("dry_run", dryRun).
		Msg("pass summary: " + s.String())

	return nil
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("fileorg")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
