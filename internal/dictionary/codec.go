package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// On-disk layout: 5-byte header (magic + format version), then a uvarint
// word count, then count records of uvarint-length-prefixed word and
// definition strings. Decoding never executes anything from the payload.
var fileMagic = [4]byte{'Q', 'T', 'L', 'X'}

const formatVersion = 1

// Maximum sane record sizes; anything larger means a corrupt file.
const (
	maxWordLen = 64
	maxDefLen  = 4096
)

// ErrUnavailable reports that the dictionary artifact is missing or
// corrupt. Fatal to puzzle generation; never defaulted around.
var ErrUnavailable = errors.New("dictionary unavailable")

// Load reads a dictionary artifact produced by Save. A missing or
// malformed file yields an error wrapping ErrUnavailable.
func Load(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()
	t, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	return t, nil
}

// Read decodes a dictionary from r.
func Read(r *bufio.Reader) (*Trie, error) {
	var header [5]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if [4]byte(header[:4]) != fileMagic {
		return nil, errors.New("bad magic")
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("unsupported format version %d", header[4])
	}
	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("read word count: %w", err)
	}
	t := New()
	for i := uint64(0); i < count; i++ {
		word, err := readString(r, maxWordLen)
		if err != nil {
			return nil, fmt.Errorf("record %d: word: %w", i, err)
		}
		def, err := readString(r, maxDefLen)
		if err != nil {
			return nil, fmt.Errorf("record %d: definition: %w", i, err)
		}
		t.Add(word, def)
	}
	return t, nil
}

// Save writes the dictionary artifact to path.
func (t *Trie) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := t.Write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes the dictionary to w in lexicographic word order.
func (t *Trie) Write(w io.Writer) error {
	if _, err := w.Write(append(fileMagic[:], formatVersion)); err != nil {
		return err
	}
	words := t.WordsWithPrefix("")
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(len(words)))
	if _, err := w.Write(buf[:n]); err != nil {
		return err
	}
	for _, word := range words {
		def, _ := t.Definition(word)
		if err := writeString(w, word); err != nil {
			return err
		}
		if err := writeString(w, def); err != nil {
			return err
		}
	}
	return nil
}

func readString(r *bufio.Reader, max uint64) (string, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return "", err
	}
	if n > max {
		return "", fmt.Errorf("length %d exceeds limit %d", n, max)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func writeString(w io.Writer, s string) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(len(s)))
	if _, err := w.Write(buf[:n]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
