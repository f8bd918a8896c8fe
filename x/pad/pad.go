// Package pad grows produced binaries to an alignment boundary, as
// required by firmware images that are memory-mapped in fixed-size
// blocks.
package pad

import (
	"fmt"
	"os"
)

// To returns a function padding a file in place with NUL bytes so its
// size becomes the next multiple of align. An already aligned file is
// left unchanged. The returned function is meant to run as a
// post-processing step right after the file is produced.
func To(align int64) func(target string) error {
	return func(target string) error {
		if align <= 0 {
			return fmt.Errorf("pad %s: alignment must be positive, got %d", target, align)
		}
		f, err := os.OpenFile(target, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			return err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return err
		}
		size := info.Size()
		padded := ((size + align - 1) / align) * align
		if padded > size {
			if _, err := f.Write(make([]byte, padded-size)); err != nil {
				f.Close()
				return err
			}
		}
		return f.Close()
	}
}
