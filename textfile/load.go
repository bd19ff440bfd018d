package textfile

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/mvickers/tidemark/buffer"
)

// Fragment size defaults, scaled to file size.
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress is the event broadcast after every loaded fragment.
type Progress struct {
	Loaded int64 // bytes appended to the buffer so far
	Total  int64 // file size in bytes
}

// progressBacklog is the buffering of the progress channel. Publishing
// never blocks; events beyond the backlog are dropped, which a progress
// display can afford.
const progressBacklog = 64

// Loader reads one text file into a gap buffer on a background
// goroutine. The buffer must not be touched before Wait returns.
type Loader struct {
	buf      *buffer.Buffer
	cast     *caster.Caster
	progress chan interface{}
	done     chan struct{}
	err      error
}

// Load reads a whole text file into a fresh gap buffer. It is the
// synchronous convenience wrapper around Start/Wait.
func Load(name string) (*buffer.Buffer, error) {
	l, err := Start(name, 0)
	if err != nil {
		return nil, err
	}
	return l.Wait()
}

// Start opens a text file and begins loading it in the background.
// fragSize is a recommended fragment length; values of 0 (or anything
// out of range) select a default scaled to the file size. Opening is
// always synchronous, so path errors surface here.
func Start(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, ErrNotRegular
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(size)
	}
	l := &Loader{
		buf:  buffer.NewSized(int(size)),
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
	// subscribe before the goroutine starts so no event can be missed
	l.progress, _ = l.cast.Sub(nil, progressBacklog)
	go l.run(file, size, fragSize)
	return l, nil
}

// defaultFragSize picks a fragment length so that small files load in
// one read while large files yield frequent progress events.
func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// Progress returns the load-progress event channel, carrying Progress
// values. It closes when loading finishes.
func (l *Loader) Progress() <-chan interface{} {
	return l.progress
}

// Wait blocks until loading finished and returns the filled buffer,
// or the first I/O error encountered.
func (l *Loader) Wait() (*buffer.Buffer, error) {
	<-l.done
	if l.err != nil {
		return nil, l.err
	}
	return l.buf, nil
}

func (l *Loader) run(file *os.File, size, fragSize int64) {
	defer close(l.done)
	defer l.cast.Close()
	defer file.Close()
	frag := make([]byte, fragSize)
	var loaded int64
	for loaded < size {
		n := min(fragSize, size-loaded)
		cnt, err := file.ReadAt(frag[:n], loaded)
		if err != nil && err != io.EOF {
			l.err = err
			T().Errorf("loading text fragment: %v", err)
			return
		}
		if int64(cnt) < n {
			l.err = ErrShortRead
			return
		}
		l.buf.AppendBytes(frag[:n])
		loaded += n
		l.cast.TryPub(Progress{Loaded: loaded, Total: size})
	}
	T().Debugf("loaded %q, %d bytes", file.Name(), loaded)
}
