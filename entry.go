// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/willf/bloom"
)

const (
	// Sized for a long session; the false positive rate only costs an
	// extra id draw.
	idFilterCapacity = 100000
	idFilterFPRate   = 0.001
	idRandomBytes    = 8
	maxIDAttempts    = 16
)

var (
	errTitleRequired   = errors.New("title is required")
	errContentRequired = errors.New("content is required")
)

// Entry is one journal entry. The trees only look at ID.
type Entry struct {
	EntryID   string
	Title     string
	Mood      string
	Content   string
	CreatedAt string
}

func (e Entry) ID() string { return e.EntryID }

// IDIssuer hands out "<prefix>_<hex>" identifiers and remembers them in a
// bloom filter so a repeat draw is retried.
type IDIssuer struct {
	seen *bloom.BloomFilter
	read func([]byte) (int, error)
}

func NewIDIssuer() *IDIssuer {
	return &IDIssuer{
		seen: bloom.NewWithEstimates(idFilterCapacity, idFilterFPRate),
		read: rand.Read,
	}
}

func (is *IDIssuer) Next(prefix string) (string, error) {
	buf := make([]byte, idRandomBytes)
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if _, err := is.read(buf); err != nil {
			return "", fmt.Errorf("failed to generate id: %v", err)
		}
		id := prefix + "_" + hex.EncodeToString(buf)
		if is.seen.TestString(id) {
			continue
		}
		is.seen.AddString(id)
		return id, nil
	}
	return "", fmt.Errorf("failed to generate a fresh id after %d attempts", maxIDAttempts)
}

// Issued reports whether id may have been handed out. False means never.
func (is *IDIssuer) Issued(id string) bool {
	return is.seen.TestString(id)
}

// EntryBuilder validates form input and stamps new entries.
type EntryBuilder struct {
	ids          *IDIssuer
	contentLimit int
	stampFormat  string
}

func NewEntryBuilder(ids *IDIssuer, config *Config) *EntryBuilder {
	return &EntryBuilder{
		ids:          ids,
		contentLimit: config.Journal.ContentLimit,
		stampFormat:  config.Journal.TimestampFormat,
	}
}

// BuildEntry trims the fields and rejects an entry without a title or
// content, or with content over the configured limit.
func (eb *EntryBuilder) BuildEntry(prefix, title, mood, content string) (Entry, error) {
	title = strings.TrimSpace(title)
	mood = strings.TrimSpace(mood)
	content = strings.TrimSpace(content)

	if title == "" {
		return Entry{}, errTitleRequired
	}
	if content == "" {
		return Entry{}, errContentRequired
	}
	if n := utf8.RuneCountInString(content); eb.contentLimit > 0 && n > eb.contentLimit {
		return Entry{}, fmt.Errorf("content is %d characters, limit is %d", n, eb.contentLimit)
	}

	id, err := eb.ids.Next(prefix)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		EntryID:   id,
		Title:     title,
		Mood:      mood,
		Content:   content,
		CreatedAt: NowStamp(eb.stampFormat),
	}, nil
}
