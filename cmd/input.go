package main

import (
	"fmt"
	"mime"
	"os"
	"prompt-lab/errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// readInput takes the prompt from -text or from a text file no larger than maxBytes.
func readInput(text, path string, maxBytes int64) (string, error) {
	if path != "" && text != "" {
		return "", fmt.Errorf("use either -text or -file")
	}
	if path != "" {
		return readTextFile(path, maxBytes)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.ErrEmptyPrompt
	}
	return text, nil
}

func readTextFile(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxBytes {
		return "", fmt.Errorf("%s is %d bytes, the limit is %d", path, info.Size(), maxBytes)
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	if mt, _, err := mime.ParseMediaType(mtype.String()); err != nil || !strings.HasPrefix(mt, "text/") {
		return "", fmt.Errorf("%w: %s is %s", errors.ErrNotText, path, mtype.String())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(content))
	if text == "" {
		return "", errors.ErrEmptyPrompt
	}
	return text, nil
}
