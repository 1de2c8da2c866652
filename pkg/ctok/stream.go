package ctok

import (
	"errors"
	"fmt"
	"io"
)

// Scanner provides a streaming interface for reading tokens one at a time
// from an io.Reader. Input is read in chunks as tokens are requested, so
// large sources are never held in memory whole.
//
// Example usage:
//
//	file, _ := os.Open("decl.c")
//	defer file.Close()
//
//	scanner := ctok.NewScanner(file)
//	for scanner.Scan() {
//	    fmt.Println(scanner.Token())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader  *recordingReader
	tok     *Tokenizer
	current Token
	done    bool
}

// NewScanner creates a new Scanner that reads source text from reader.
func NewScanner(reader io.Reader) *Scanner {
	rec := &recordingReader{reader: reader}
	return &Scanner{
		reader: rec,
		tok:    NewTokenizerFromReader(rec),
	}
}

// Scan advances the scanner to the next token.
// It returns false at the end of input, on an unrecognized character, or
// when reading fails. After Scan returns false, Err reports a read failure
// if there was one.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	token, ok := s.tok.Next()
	if !ok {
		s.done = true
		s.current = Token{}
		return false
	}

	s.current = token
	return true
}

// Token returns the token produced by the most recent call to Scan.
func (s *Scanner) Token() Token {
	return s.current
}

// Err returns the read error, if any, that ended scanning.
// It returns nil at the end of input and when scanning stopped on an
// unrecognized character.
func (s *Scanner) Err() error {
	if s.reader.err == nil {
		return nil
	}
	return fmt.Errorf("ctok: read input: %w", s.reader.err)
}

// recordingReader remembers the first non-EOF error returned by the
// underlying reader. The framework stream treats any read error as the end
// of the stream.
type recordingReader struct {
	reader io.Reader
	err    error
}

func (r *recordingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && r.err == nil {
		r.err = err
	}
	return n, err
}
