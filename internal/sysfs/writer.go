// Package sysfs writes formatted values to kernel sysfs attribute
// files. Each write opens, writes and closes the file; sysfs attributes
// do not hold state across writes worth keeping a descriptor for.
package sysfs

import (
	"os"
	"strconv"
	"sync"

	"github.com/scheerer/aries-lights/internal/logging"
	"go.uber.org/zap"
)

var logger = logging.New("sysfs")

// Writer writes decimal or literal text values to sysfs files. A
// failure to open a path is logged once per distinct path for the
// process lifetime; a missing device file would otherwise flood the
// log on every lighting update.
type Writer struct {
	mu     sync.Mutex
	warned map[string]bool
}

func NewWriter() *Writer {
	return &Writer{warned: make(map[string]bool)}
}

// WriteInt writes value as decimal text followed by a newline.
func (w *Writer) WriteInt(path string, value int) error {
	return w.write(path, strconv.Itoa(value)+"\n")
}

// WriteString writes value as-is, with no added newline.
func (w *Writer) WriteString(path string, value string) error {
	return w.write(path, value)
}

func (w *Writer) write(path, value string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		w.warnOpenFailure(path, err)
		return err
	}
	defer f.Close()

	_, err = f.WriteString(value)
	return err
}

func (w *Writer) warnOpenFailure(path string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.warned[path] {
		return
	}
	w.warned[path] = true
	logger.With(zap.String("path", path), zap.Error(err)).Error("failed to open sysfs file")
}
