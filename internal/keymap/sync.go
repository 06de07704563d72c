/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package keymap

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type Status int

const (
	Unchanged Status = iota
	Updated
	Skipped
)

func (s Status) String() string {
	switch s {
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	default:
		return "unchanged"
	}
}

// LayerReport is the outcome for one layer
type LayerReport struct {
	Layer  string
	Status Status
	Reason string
}

// Report lists the outcome of every layer in document order
type Report struct {
	Layers []LayerReport
}

// Changed reports whether any comment block was rewritten
func (r Report) Changed() bool {
	for _, l := range r.Layers {
		if l.Status == Updated {
			return true
		}
	}
	return false
}

func (r Report) Count(s Status) int {
	n := 0
	for _, l := range r.Layers {
		if l.Status == s {
			n++
		}
	}
	return n
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Synchronizer rewrites layer comment blocks from the layer bindings
type Synchronizer struct {
	labels Labels
	logger *zap.Logger
}

type Option func(*Synchronizer)

func WithLogger(l *zap.Logger) Option {
	return func(s *Synchronizer) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSynchronizer(labels Labels, opts ...Option) *Synchronizer {
	s := &Synchronizer{labels: labels, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Labels resolves every binding of the layer, position by position
func (s *Synchronizer) Labels(l Layer) []string {
	out := make([]string, len(l.Bindings))
	for i, b := range l.Bindings {
		out[i] = s.labels.Resolve(b)
	}
	return out
}

// Sync returns text with every recognizable layer comment regenerated.
// Lines outside the rewritten blocks are returned unchanged.
func (s *Synchronizer) Sync(text string) (string, Report) {
	doc := ParseDocument(text)
	lines := slices.Clone(doc.Lines)
	report := Report{Layers: make([]LayerReport, len(doc.Layers))}

	// bottom-up so earlier line numbers stay valid when a block changes height
	for i := len(doc.Layers) - 1; i >= 0; i-- {
		report.Layers[i], lines = s.syncLayer(lines, doc.Layers[i])
	}

	for _, lr := range report.Layers {
		s.logger.Debug("layer processed",
			zap.String("layer", lr.Layer),
			zap.Stringer("status", lr.Status),
		)
	}
	doc.Lines = lines
	return doc.String(), report
}

func (s *Synchronizer) syncLayer(lines []string, layer Layer) (LayerReport, []string) {
	lr := LayerReport{Layer: layer.Name}

	if layer.Warning != nil {
		lr.Status = Skipped
		lr.Reason = layer.Warning.Reason
		s.logger.Warn("layer skipped, comment left as is",
			zap.String("layer", layer.Name),
			zap.Int("line", layer.Warning.Line),
			zap.String("reason", layer.Warning.Reason),
		)
		return lr, lines
	}

	block, ok := FindBlock(lines, layer.StartLine, layer.EndLine+1)
	if !ok {
		lr.Status = Skipped
		lr.Reason = "no comment block"
		s.logger.Warn("layer has no comment block",
			zap.String("layer", layer.Name),
			zap.Int("line", layer.StartLine+1),
		)
		return lr, lines
	}

	if n := len(layer.Bindings); n != KeyCount {
		s.logger.Warn("unexpected binding count",
			zap.String("layer", layer.Name),
			zap.Int("bindings", n),
			zap.Int("expected", KeyCount),
		)
	}

	rendered := block.Lines(s.Labels(layer))
	if slices.Equal(rendered, lines[block.Start:block.End]) {
		lr.Status = Unchanged
		return lr, lines
	}

	lr.Status = Updated
	return lr, slices.Replace(lines, block.Start, block.End, rendered...)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// SyncFile reads in, regenerates its comments and writes the result to out.
// An empty out overwrites in. Nothing is written when in cannot be read.
func (s *Synchronizer) SyncFile(in, out string) (Report, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return Report{}, &FileAccessError{Op: "read", Path: in, Err: err}
	}

	synced, report := s.Sync(string(data))

	if out == "" {
		out = in
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(in); err == nil {
		perm = info.Mode().Perm()
	}
	if err := WriteFile(out, []byte(synced), perm); err != nil {
		return report, &FileAccessError{Op: "write", Path: out, Err: err}
	}
	return report, nil
}

// CheckFile runs the synchronizer without writing anything
func (s *Synchronizer) CheckFile(in string) (Report, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return Report{}, &FileAccessError{Op: "read", Path: in, Err: err}
	}
	_, report := s.Sync(string(data))
	return report, nil
}

// WriteFile replaces path through a sibling temp file, never leaving a partial file behind
func WriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
