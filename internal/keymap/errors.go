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
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// FileAccessError reports an unreadable input or an unwritable output.
// Op is either "read" or "write".
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// LayerParseWarning marks a layer whose body could not be turned into bindings.
// The layer comment is left as is.
type LayerParseWarning struct {
	Layer  string
	Line   int
	Reason string
}

func (w *LayerParseWarning) Error() string {
	return fmt.Sprintf("layer %s (line %d): %s", w.Layer, w.Line, w.Reason)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
