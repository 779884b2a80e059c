package mjai

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxLineSize bounds a single event line. Start-of-game lines with long
// player names stay far below this.
const maxLineSize = 16 << 20

var (
	// ErrMalformedLine marks a line that is not a JSON object.
	ErrMalformedLine = errors.New("malformed line")
	// ErrNoType marks a JSON object without a "type" tag.
	ErrNoType = errors.New("event has no type")
	// ErrNotRestartable is returned by Reset on readers not backed by a file.
	ErrNotRestartable = errors.New("reader is not backed by a file")
)

// LogSuffixes are the file names treated as event logs when a directory is
// searched. A file named explicitly is read whatever its name.
var LogSuffixes = []string{".mjson", ".mjson.gz", ".json", ".json.gz"}

// IsLogName reports whether name carries one of LogSuffixes.
func IsLogName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range LogSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// Compression identifies how a log source is encoded.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DetectCompression inspects the leading bytes of a source.
func DetectCompression(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Result is the outcome of one non-empty line: either an Event, or a Skip
// carrying the reason the line could not be used.
type Result struct {
	Line  int   // 1-based line number in the decompressed stream
	Event Event // valid only when Skip is nil
	Skip  error
}

// OK reports whether the line decoded into an event.
func (r Result) OK() bool {
	return r.Skip == nil
}

// Reader yields decoded event lines in file order, one line at a time.
type Reader struct {
	file        *os.File
	decoder     io.Closer
	scanner     *bufio.Scanner
	compression Compression
	line        int
	err         error
}

// Open opens a log file, detecting gzip or zstd compression from its
// leading bytes. The file extension is not consulted.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	r := &Reader{file: file}
	if err := r.init(file); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// NewReader wraps an arbitrary stream. Readers built this way cannot Reset.
func NewReader(src io.Reader) (*Reader, error) {
	r := &Reader{}
	if err := r.init(src); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) init(src io.Reader) error {
	buffered := bufio.NewReader(src)
	// Peek returns what it has on short input; an empty file is plain text.
	head, _ := buffered.Peek(len(zstdMagic))

	var stream io.Reader = buffered
	r.compression = DetectCompression(head)
	switch r.compression {
	case CompressionGzip:
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return fmt.Errorf("opening gzip stream: %w", err)
		}
		r.decoder = gz
		stream = gz
	case CompressionZstd:
		dec, err := zstd.NewReader(buffered)
		if err != nil {
			return fmt.Errorf("opening zstd stream: %w", err)
		}
		rc := dec.IOReadCloser()
		r.decoder = rc
		stream = rc
	}

	r.scanner = bufio.NewScanner(stream)
	r.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	r.line = 0
	r.err = nil
	return nil
}

// Compression reports the encoding detected for the source.
func (r *Reader) Compression() Compression {
	return r.compression
}

// Next returns the next non-empty line. It returns false at end of input or
// on a read error; Err distinguishes the two.
func (r *Reader) Next() (Result, bool) {
	for r.scanner.Scan() {
		r.line++
		text := bytes.TrimSpace(r.scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		return decodeLine(r.line, text), true
	}
	r.err = r.scanner.Err()
	return Result{}, false
}

// Results adapts Next to a range-over-func sequence.
func (r *Reader) Results() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for {
			res, ok := r.Next()
			if !ok || !yield(res) {
				return
			}
		}
	}
}

// Err returns the read error that stopped Next, if any.
func (r *Reader) Err() error {
	return r.err
}

// Reset rewinds a file-backed reader to the first line.
func (r *Reader) Reset() error {
	if r.file == nil {
		return ErrNotRestartable
	}
	if r.decoder != nil {
		r.decoder.Close()
		r.decoder = nil
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding log: %w", err)
	}
	return r.init(r.file)
}

// Close releases the decompressor and the underlying file.
func (r *Reader) Close() error {
	var errs []error
	if r.decoder != nil {
		errs = append(errs, r.decoder.Close())
		r.decoder = nil
	}
	if r.file != nil {
		errs = append(errs, r.file.Close())
		r.file = nil
	}
	return errors.Join(errs...)
}

func decodeLine(line int, data []byte) Result {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Result{Line: line, Skip: fmt.Errorf("%w: %v", ErrMalformedLine, err)}
	}
	if ev.Type == "" {
		return Result{Line: line, Skip: ErrNoType}
	}
	return Result{Line: line, Event: ev}
}

// ParseEvent decodes a single event line.
func ParseEvent(data []byte) (Event, error) {
	res := decodeLine(0, bytes.TrimSpace(data))
	return res.Event, res.Skip
}
