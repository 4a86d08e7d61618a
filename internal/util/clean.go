package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

const binarySniffBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Resume exports from word processors carry Windows-1252 punctuation that
// survives into the training corpus as noise tokens. Map the usual suspects
// to plain ASCII before anything downstream sees the text.
var charReplacements = map[string]string{
	"\u2018": "'", "\u2019": "'", "\u201C": "\"", "\u201D": "\"",
	"\u2013": "-", "\u2014": "--", "\u2026": "...", "\u00a0": " ",
	"\u0091": "'", "\u0092": "'", "\u0093": "\"", "\u0094": "\"",
	"\u0096": "-", "\u0097": "--", "\u2022": "*",
}

// IsLikelyBinary sniffs the first 512 bytes of the file for a NUL byte.
func IsLikelyBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, binarySniffBytes)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return bytes.Contains(buffer[:n], []byte{0}), nil
}

// CleanFileContent normalizes raw resume bytes into UTF-8 text: BOM
// stripped, invalid sequences replaced, smart punctuation flattened.
// src is only used in diagnostics.
func CleanFileContent(raw []byte, src string) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if !utf8.Valid(raw) {
		log.Warnf("%s is not valid UTF-8, replacing invalid sequences", src)
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}

	text := string(raw)
	for bad, good := range charReplacements {
		text = strings.ReplaceAll(text, bad, good)
	}

	if !utf8.ValidString(text) {
		return "", fmt.Errorf("invalid UTF-8 after cleaning: %s", src)
	}
	return text, nil
}
