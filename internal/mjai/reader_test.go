package mjai

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const sampleLog = `{"type":"start_game","names":["A","B","C","D"]}

not json
{"actor":0}
{"type":"tsumo","actor":0,"pai":"1m"}
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func zstdBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return buf.Bytes()
}

func collect(t *testing.T, r *Reader) []Result {
	t.Helper()
	var out []Result
	for res := range r.Results() {
		out = append(out, res)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("reader error: %v", err)
	}
	return out
}

func checkSampleLog(t *testing.T, results []Result) {
	t.Helper()
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4 (blank line dropped)", len(results))
	}

	if !results[0].OK() || results[0].Event.Type != EventStartGame || results[0].Line != 1 {
		t.Errorf("result 0 = %+v, want start_game on line 1", results[0])
	}
	if results[1].OK() || !errors.Is(results[1].Skip, ErrMalformedLine) || results[1].Line != 3 {
		t.Errorf("result 1 = %+v, want malformed skip on line 3", results[1])
	}
	if results[2].OK() || !errors.Is(results[2].Skip, ErrNoType) || results[2].Line != 4 {
		t.Errorf("result 2 = %+v, want no-type skip on line 4", results[2])
	}

	last := results[3]
	if !last.OK() || last.Event.Type != EventTsumo || last.Line != 5 {
		t.Fatalf("result 3 = %+v, want tsumo on line 5", last)
	}
	if last.Event.Actor == nil || *last.Event.Actor != 0 || last.Event.Pai != "1m" {
		t.Errorf("tsumo decoded as %+v", last.Event)
	}
}

func TestOpenDetectsCompressionFromContent(t *testing.T) {
	// Names are deliberately misleading: only the leading bytes count.
	cases := []struct {
		name string
		file string
		data []byte
		want Compression
	}{
		{"plain", "log.gz", []byte(sampleLog), CompressionNone},
		{"gzip", "log.mjson", gzipBytes(t, sampleLog), CompressionGzip},
		{"zstd", "log.txt", zstdBytes(t, sampleLog), CompressionZstd},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Open(writeFile(t, tc.file, tc.data))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer r.Close()

			if got := r.Compression(); got != tc.want {
				t.Errorf("Compression() = %v, want %v", got, tc.want)
			}
			checkSampleLog(t, collect(t, r))
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mjson"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Open missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	r, err := Open(writeFile(t, "empty.mjson", nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if res, ok := r.Next(); ok {
		t.Fatalf("Next on empty file = %+v, want end of input", res)
	}
	if r.Err() != nil {
		t.Fatalf("Err = %v, want nil", r.Err())
	}
}

func TestResetRereadsFromStart(t *testing.T) {
	for _, compressed := range []bool{false, true} {
		data := []byte(sampleLog)
		if compressed {
			data = gzipBytes(t, sampleLog)
		}
		r, err := Open(writeFile(t, "log.mjson", data))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}

		first := collect(t, r)
		if err := r.Reset(); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		second := collect(t, r)
		r.Close()

		if len(first) != len(second) {
			t.Fatalf("compressed=%v: second pass read %d results, first %d", compressed, len(second), len(first))
		}
		for i := range first {
			if first[i].Line != second[i].Line || first[i].Event.Type != second[i].Event.Type {
				t.Errorf("compressed=%v: result %d differs after Reset: %+v vs %+v", compressed, i, first[i], second[i])
			}
		}
	}
}

func TestNewReaderIsNotRestartable(t *testing.T) {
	r, err := NewReader(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	checkSampleLog(t, collect(t, r))

	if err := r.Reset(); !errors.Is(err, ErrNotRestartable) {
		t.Fatalf("Reset = %v, want ErrNotRestartable", err)
	}
}

func TestResultsStopsEarly(t *testing.T) {
	r, err := NewReader(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	for res := range r.Results() {
		if res.Line != 1 {
			t.Fatalf("first result on line %d", res.Line)
		}
		break
	}
	// The remaining lines are still available.
	res, ok := r.Next()
	if !ok || res.Line != 3 {
		t.Fatalf("Next after break = %+v, %v; want line 3", res, ok)
	}
}

func TestCorruptGzipReportsError(t *testing.T) {
	data := gzipBytes(t, strings.Repeat(`{"type":"dahai","actor":1,"pai":"3s"}`+"\n", 50))
	// Keep the header so detection succeeds, then cut the stream short.
	data = data[:len(data)/2]

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	for range r.Results() {
	}
	if r.Err() == nil {
		t.Fatal("expected a read error for a truncated gzip stream")
	}
}

func TestDetectCompression(t *testing.T) {
	cases := []struct {
		head []byte
		want Compression
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00}, CompressionGzip},
		{[]byte{0x28, 0xb5, 0x2f, 0xfd}, CompressionZstd},
		{[]byte(`{"ty`), CompressionNone},
		{[]byte{0x1f}, CompressionNone},
		{nil, CompressionNone},
	}
	for _, tc := range cases {
		if got := DetectCompression(tc.head); got != tc.want {
			t.Errorf("DetectCompression(% x) = %v, want %v", tc.head, got, tc.want)
		}
	}
}

func TestParseEventHoraFields(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"type":"hora","actor":1,"target":3,"pai":"7p","hora_pai":"8p",
		"yakus":[["Riichi",1],["Ippatsu",1]],"fu":40,"uradora_markers":["2s"],"deltas":[0,5200,0,-5200]}`))
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	if ev.WinTile() != "8p" {
		t.Errorf("WinTile = %q, want hora_pai 8p", ev.WinTile())
	}
	if got := ev.ClaimedYaku().Han(); got != 2 {
		t.Errorf("yaku han = %d, want 2", got)
	}
	if ev.Han != nil {
		t.Errorf("Han = %d, want absent", *ev.Han)
	}
	if ev.Fu == nil || *ev.Fu != 40 {
		t.Errorf("Fu = %v, want 40", ev.Fu)
	}
	if ura := ev.UraDora(); len(ura) != 1 || ura[0] != "2s" {
		t.Errorf("UraDora = %v, want [2s]", ura)
	}

	ev.HoraPai = ""
	if ev.WinTile() != "7p" {
		t.Errorf("WinTile without hora_pai = %q, want pai 7p", ev.WinTile())
	}
}

func TestParseEventBadYakuIsMalformed(t *testing.T) {
	_, err := ParseEvent([]byte(`{"type":"hora","actor":0,"target":0,"yaku":[["Riichi",1],5]}`))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("ParseEvent error = %v, want ErrMalformedLine", err)
	}
}

func TestEventTypeIsCall(t *testing.T) {
	calls := map[EventType]bool{
		EventChi: true, EventPon: true, EventMinkan: true, EventDaikan: true,
		EventAnkan: false, EventKakan: false, EventDahai: false, EventHora: false,
	}
	for typ, want := range calls {
		if got := typ.IsCall(); got != want {
			t.Errorf("%s.IsCall() = %v, want %v", typ, got, want)
		}
	}
}

func TestIsLogName(t *testing.T) {
	cases := map[string]bool{
		"game.mjson":      true,
		"GAME.MJSON":      true,
		"game.mjson.gz":   true,
		"game.json":       true,
		"game.json.gz":    true,
		"game.mjson.zst":  false,
		"notes.txt":       false,
		"mjson":           false,
		"config.yaml":     false,
		"archive.json.gz": true,
	}
	for name, want := range cases {
		if got := IsLogName(name); got != want {
			t.Errorf("IsLogName(%q) = %v, want %v", name, got, want)
		}
	}
}
