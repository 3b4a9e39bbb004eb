package fs

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	previewSampleBytes           = 64 * 1024
	sniffBytes                   = 4096
	nonPrintableThresholdPercent = 30
)

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// TextSample is the head of a file prepared for the preview column.
type TextSample struct {
	Lines     []string
	Binary    bool
	Truncated bool
}

// ReadTextSample reads the beginning of path and splits it into at most
// maxLines lines. Binary content yields a sample with Binary set and no lines.
func ReadTextSample(path string, maxLines int) (TextSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return TextSample{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(f, previewSampleBytes+1))
	if err != nil {
		return TextSample{}, err
	}

	truncated := len(content) > previewSampleBytes
	if truncated {
		content = content[:previewSampleBytes]
	}
	if !IsText(content) {
		return TextSample{Binary: true}, nil
	}

	text := DecodeText(content)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}
	return TextSample{Lines: lines, Truncated: truncated}, nil
}

// IsText sniffs the first bytes of content and reports whether it looks like
// text. BOM-marked Unicode is always text; NUL bytes mean binary.
func IsText(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffBytes {
		sample = sample[:sniffBytes]
	}
	if detectEncoding(sample) != encodingPlain {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// DecodeText converts BOM-marked UTF-8 and UTF-16 content to a UTF-8 string.
func DecodeText(content []byte) string {
	switch detectEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

func detectEncoding(sample []byte) textEncoding {
	switch {
	case len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF:
		return encodingUTF8BOM
	case len(sample) >= 2 && sample[0] == 0xFF && sample[1] == 0xFE:
		return encodingUTF16LE
	case len(sample) >= 2 && sample[0] == 0xFE && sample[1] == 0xFF:
		return encodingUTF16BE
	}
	return encodingPlain
}

func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}
