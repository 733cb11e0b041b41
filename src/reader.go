package nucleo

import (
	"bufio"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charlievieth/fastwalk"
)

// Reader feeds candidate strings into an Injector
type Reader struct {
	injector *Injector
}

// NewReader returns a new Reader
func NewReader(injector *Injector) *Reader {
	return &Reader{injector: injector}
}

// ReadStream pushes one item per line
func (r *Reader) ReadStream(src io.Reader) {
	if scanner := bufio.NewScanner(src); scanner != nil {
		for scanner.Scan() {
			r.injector.Push(scanner.Text())
		}
	}
}

// ReadFiles walks the directory tree under root and pushes the path of
// every regular file. Hidden directories are pruned. The walk runs on
// multiple goroutines; Push is safe for concurrent use.
func (r *Reader) ReadFiles(root string) error {
	conf := fastwalk.Config{Follow: false}
	return fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			r.injector.Push(path)
		}
		return nil
	})
}
