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
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/fileorg/pkg/hasher"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Hasher computes a content digest for a file
type Hasher interface {
	Digest(ctx context.Context, path string) (string, error)
}

// 🔧 Options contains configuration for the organizer
type Options struct {
	// Sink receives one notification per decision or failure
	Sink Sink
	// Hasher defaults to a SHA-256 hasher with the default chunk size
	Hasher Hasher
	// FS defaults to OSFileSystem
	FS FileSystem
	// Ignore holds doublestar patterns matched against entry names
	Ignore []string
}

// 🎮 Organizer runs organize passes over a directory
type Organizer struct {
	sink   Sink
	hasher Hasher
	fs     FileSystem
	ignore []string
}

// 🏭 New creates an organizer with the given options
func New(opts Options) (*Organizer, error) {
	if opts.Sink == nil {
		return nil, errors.Errorf("sink is required")
	}
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	o := &Organizer{
		sink:   opts.Sink,
		hasher: opts.Hasher,
		fs:     opts.FS,
		ignore: opts.Ignore,
	}
	if o.hasher == nil {
		o.hasher = hasher.New(hasher.DefaultChunkSize)
	}
	if o.fs == nil {
		o.fs = OSFileSystem{}
	}
	return o, nil
}

// 📦 Organize runs one non-recursive pass over dir.
//
// It returns the decisions made in enumeration order. When the pass stops
// early the decisions made so far are returned with the error; moves already
// applied are left in place.
func (o *Organizer) Organize(ctx context.Context, dir string, dryRun bool) ([]Decision, error) {
	logger := zerolog.Ctx(ctx).With().Str("directory", dir).Bool("dry_run", dryRun).Logger()
	ctx = logger.WithContext(ctx)

	info, err := o.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = errors.Errorf("%s is not a directory", dir)
		}
		o.sink.Notify(ctx, Notification{Kind: KindInvalidDirectory, Name: dir, Err: err})
		return nil, errors.Errorf("%w: %s", ErrInvalidDirectory, dir)
	}

	entries, err := o.fs.ReadDir(dir)
	if err != nil {
		o.sink.Notify(ctx, Notification{Kind: KindFailed, Name: dir, Err: err})
		return nil, errors.Errorf("listing %s: %w", dir, err)
	}

	logger.Debug().Int("entries", len(entries)).Msg("starting pass")

	p := &pass{dir: dir, dryRun: dryRun, registry: NewRegistry(), vacated: map[string]bool{}}
	decisions := make([]Decision, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			o.sink.Notify(ctx, Notification{Kind: KindFailed, Name: entry.Name(), Err: err})
			return decisions, errors.Errorf("pass interrupted: %w", err)
		}

		if !entry.Type().IsRegular() {
			logger.Trace().Str("entry", entry.Name()).Str("type", entry.Type().String()).Msg("skipping non-regular entry")
			continue
		}

		if o.ignored(entry.Name()) {
			logger.Debug().Str("file", entry.Name()).Msg("ignoring file")
			continue
		}

		decision, err := o.process(ctx, p, entry)
		if err != nil {
			o.sink.Notify(ctx, Notification{Kind: KindFailed, Name: entry.Name(), Err: err})
			return decisions, errors.Errorf("organizing %s: %w", dir, err)
		}

		decisions = append(decisions, decision)
		o.sink.Notify(ctx, notificationFor(decision, dryRun))
	}

	logger.Debug().
		Int("decisions", len(decisions)).
		Int("distinct_contents", p.registry.Len()).
		Msg("pass complete")

	return decisions, nil
}

// pass holds the state of one organize pass
type pass struct {
	dir      string
	dryRun   bool
	registry *Registry
	// vacated holds names a dry run has planned to move out of dir
	vacated map[string]bool
}

// process hashes one regular file, decides and applies the decision
func (o *Organizer) process(ctx context.Context, p *pass, entry fs.DirEntry) (Decision, error) {
	name := entry.Name()

	digest, err := o.hasher.Digest(ctx, filepath.Join(p.dir, name))
	if err != nil {
		return Decision{}, &StepError{Name: name, Category: ErrUnreadableFile, Err: err}
	}

	if !p.registry.Record(digest, name) {
		original, _ := p.registry.Lookup(digest)
		return Decision{
			Name:     name,
			Digest:   digest,
			Action:   ActionSkipDuplicate,
			Original: original,
		}, nil
	}

	decision := Decision{
		Name:         name,
		Digest:       digest,
		Action:       ActionMove,
		ExtensionKey: ExtensionKey(name),
	}

	if err := o.checkDestination(p, name, decision.ExtensionKey); err != nil {
		return Decision{}, &StepError{Name: name, Category: ErrMoveFailed, Err: err}
	}

	if p.dryRun {
		p.vacated[name] = true
		return decision, nil
	}

	if err := o.move(p.dir, name, decision.ExtensionKey); err != nil {
		return Decision{}, &StepError{Name: name, Category: ErrMoveFailed, Err: err}
	}
	decision.Applied = true

	return decision, nil
}

// checkDestination fails when dir/key cannot hold name: key exists but is not
// a directory, or key/name already exists. Dry runs treat vacated names as gone.
func (o *Organizer) checkDestination(p *pass, name, key string) error {
	if p.vacated[key] {
		return nil
	}

	target := filepath.Join(p.dir, key)
	info, err := o.fs.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Errorf("checking folder %s: %w", key, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s", ErrFolderIsFile, key)
	}

	dest := filepath.Join(target, name)
	if _, err := o.fs.Lstat(dest); err == nil {
		return errors.Errorf("%w: %s", ErrDestinationExists, filepath.Join(key, name))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errors.Errorf("checking destination: %w", err)
	}
	return nil
}

// move relocates dir/name into dir/key/name, creating the folder if needed
func (o *Organizer) move(dir, name, key string) error {
	target := filepath.Join(dir, key)
	if err := o.fs.MkdirAll(target, 0o755); err != nil {
		return errors.Errorf("creating folder %s: %w", key, err)
	}

	if err := o.fs.Rename(filepath.Join(dir, name), filepath.Join(target, name)); err != nil {
		return errors.Errorf("renaming: %w", err)
	}
	return nil
}

// ignored reports whether name matches an ignore pattern
func (o *Organizer) ignored(name string) bool {
	for _, pattern := range o.ignore {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
