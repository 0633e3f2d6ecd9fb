package domain

import (
	"path/filepath"
	"strings"
)

const keyDelimiter = "_"

type UploadedDocument struct {
	Filename string
	Content  []byte
}

func (d *UploadedDocument) Key() (string, bool) {
	return DeriveKey(d.Filename)
}

// DeriveKey extracts the correlation key from a document filename: the part
// before the first "_", or the base name without extension when there is no
// delimiter.
func DeriveKey(filename string) (string, bool) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return "", false
	}

	var key string
	if prefix, _, found := strings.Cut(name, keyDelimiter); found {
		key = prefix
	} else {
		key = strings.TrimSuffix(name, filepath.Ext(name))
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}

	return key, true
}
