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

package organize

import (
	"context"
	"fmt"
)

// 📊 Action is what a pass decided to do with a file
type Action int

const (
	ActionMove          Action = iota // File belongs in its extension folder
	ActionSkipDuplicate               // Content already seen, file stays put
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionSkipDuplicate:
		return "skip-duplicate"
	default:
		return "unknown"
	}
}

// 📄 Decision is the outcome for one file
type Decision struct {
	Name         string // File name inside the organized directory
	Digest       string // Content digest
	Action       Action
	ExtensionKey string // Destination folder, set for ActionMove
	Original     string // First file with the same content, set for ActionSkipDuplicate
	Applied      bool   // Whether the move actually happened on disk
}

// Kind categorizes a notification
type Kind int

const (
	KindMoved Kind = iota
	KindWouldMove
	KindDuplicate
	KindInvalidDirectory
	KindFailed
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindMoved:
		return "moved"
	case KindWouldMove:
		return "would-move"
	case KindDuplicate:
		return "duplicate"
	case KindInvalidDirectory:
		return "invalid-directory"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsError reports whether the notification describes a failure.
func (k Kind) IsError() bool {
	return k == KindInvalidDirectory || k == KindFailed
}

// 📢 Notification is the record a pass emits for every decision or failure.
//
// Target holds the extension folder for moves and the original file name for
// duplicates. For KindInvalidDirectory, Name is the directory path.
type Notification struct {
	Kind   Kind
	Name   string
	Target string
	Err    error
}

// notificationFor maps a decision to the notification describing it
func notificationFor(d Decision, dryRun bool) Notification {
	switch {
	case d.Action == ActionSkipDuplicate:
		return Notification{Kind: KindDuplicate, Name: d.Name, Target: d.Original}
	case dryRun:
		return Notification{Kind: KindWouldMove, Name: d.Name, Target: d.ExtensionKey}
	default:
		return Notification{Kind: KindMoved, Name: d.Name, Target: d.ExtensionKey}
	}
}

// 🔌 Sink consumes notifications. Presentation belongs to the implementation.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, n Notification)

// Notify calls f(ctx, n)
func (f SinkFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// 🎙️ Recorder is a Sink that keeps every notification in memory
type Recorder struct {
	Notifications []Notification
}

// Notify appends n
func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// OfKind returns the recorded notifications of kind k, in order.
func (r *Recorder) OfKind(k Kind) []Notification {
	var out []Notification
	for _, n := range r.Notifications {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	return out
}

// 🧮 Summary tallies the decisions of one pass
type Summary struct {
	Moved      int
	WouldMove  int
	Duplicates int
	Folders    []string // Distinct extension folders, first-seen order
}

// Summarize counts decisions. Moves that were not applied count as WouldMove.
func Summarize(decisions []Decision) Summary {
	var s Summary
	seen := make(map[string]bool)
	for _, d := range decisions {
		switch d.Action {
		case ActionSkipDuplicate:
			s.Duplicates++
			continue
		case ActionMove:
			if d.Applied {
				s.Moved++
			} else {
				s.WouldMove++
			}
		}
		if !seen[d.ExtensionKey] {
			seen[d.ExtensionKey] = true
			s.Folders = append(s.Folders, d.ExtensionKey)
		}
	}
	return s
}

// Total returns the number of files the pass decided on.
func (s Summary) Total() int {
	return s.Moved + s.WouldMove + s.Duplicates
}

// String returns a one-line description of the summary
func (s Summary) String() string {
	return fmt.Sprintf("%d moved, %d would move, %d duplicates, %d folders", s.Moved, s.WouldMove, s.Duplicates, len(s.Folders))
}
