package tokenizer

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ProgressFunc receives the integer percentage of input bytes consumed.
// It is called at most once per distinct value, in increasing order.
type ProgressFunc func(percent int)

// Tokenizer streams keyword tokens out of a Clausewitz-style script.
// It is single-pass: once Next returns false the sequence is over, and the
// only way to re-read the input is to build a new Tokenizer on a fresh reader.
type Tokenizer struct {
	reader  *bufio.Reader
	encoder *encoding.Encoder

	TotalSize int64
	BytesRead int64

	pending     []string
	lastPercent int
	progress    ProgressFunc
	eof         bool
	finished    bool
	err         error
}

// New builds a Tokenizer over r, decoding it under the named encoding.
// totalSize is the input's byte length, used only for progress accounting.
// Bytes that cannot be decoded are replaced, never fatal.
func New(r io.Reader, totalSize int64, encodingName string, progress ProgressFunc) (*Tokenizer, error) {
	enc, err := ResolveEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	return &Tokenizer{
		reader:      bufio.NewReader(transform.NewReader(r, enc.NewDecoder())),
		encoder:     encoding.ReplaceUnsupported(enc.NewEncoder()),
		TotalSize:   totalSize,
		lastPercent: -1,
		progress:    progress,
	}, nil
}

// Next returns the next keyword token. It returns false once the input is
// exhausted or a read error occurred; check Err to tell the two apart.
func (t *Tokenizer) Next() (string, bool) {
	for t.err == nil {
		if len(t.pending) > 0 {
			keyword := t.pending[0]
			t.pending = t.pending[1:]
			return keyword, true
		}

		if t.eof {
			t.emitFinal()
			return "", false
		}

		line, err := t.reader.ReadString('\n')
		if len(line) > 0 {
			t.advance(line)
			t.pending = ExtractKeywords(line)
		}

		switch err {
		case nil:
		case io.EOF:
			t.eof = true
		default:
			t.err = err
		}
	}

	return "", false
}

// Err reports the read error that stopped the stream, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// advance adds the line's byte length (re-encoded under the declared
// encoding, errors dropped) to the running offset and reports progress
// whenever the integer percentage increases.
func (t *Tokenizer) advance(line string) {
	encoded, err := t.encoder.String(line)
	if err != nil {
		encoded = line
	}
	t.BytesRead += int64(len(encoded))

	if t.TotalSize <= 0 {
		return
	}

	percent := int(t.BytesRead * 100 / t.TotalSize)
	if percent > 100 {
		percent = 100
	}
	if percent > t.lastPercent {
		t.lastPercent = percent
		if t.progress != nil {
			t.progress(percent)
		}
	}
}

// emitFinal reports the unconditional trailing 100%, exactly once.
func (t *Tokenizer) emitFinal() {
	if t.finished {
		return
	}
	t.finished = true
	t.lastPercent = 100
	if t.progress != nil {
		t.progress(100)
	}
}
