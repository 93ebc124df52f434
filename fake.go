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
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/cybrota/treejournal/trees"
)

// FillRandom inserts n generated entries into each tree. General entries
// hang under a random earlier entry (or the root); binary keys are random
// integers, redrawn on collision. onStep, if set, is called once per pair.
func (s *Session) FillRandom(n int, onStep func()) error {
	if n <= 0 {
		return s.fail(fmt.Errorf("fake count must be positive, got %d", n))
	}

	faker := gofakeit.New(0)
	keySpace := 10*(n+s.Binary.Size()) + 100
	parents := make([]string, 0, n)

	for i := 0; i < n; i++ {
		parentID := ""
		if len(parents) > 0 && faker.Bool() {
			parentID = parents[faker.Number(0, len(parents)-1)]
		}
		node, err := s.General.Insert(s.fakeEntry(faker, "g"), parentID)
		if err != nil {
			return s.fail(err)
		}
		parents = append(parents, node.Entry.ID())

		entry := s.fakeEntry(faker, "b")
		for {
			_, err := s.Binary.Insert(float64(faker.Number(1, keySpace)), entry)
			if err == nil {
				break
			}
			if !errors.Is(err, trees.ErrDuplicateKey) {
				return s.fail(err)
			}
		}

		if onStep != nil {
			onStep()
		}
	}

	s.logOp("Fake: generated %d entries for each tree.", n)
	s.Notify(ToastSuccess, fmt.Sprintf("Generated %d entries.", n))
	return nil
}

func (s *Session) fakeEntry(faker *gofakeit.Faker, prefix string) Entry {
	content := faker.Paragraph(1, 3, 12, " ")
	if limit := s.config.Journal.ContentLimit; limit > 0 && utf8.RuneCountInString(content) > limit {
		content = string([]rune(content)[:limit])
	}

	id, err := s.ids.Next(prefix)
	if err != nil {
		// crypto/rand failed
		id = prefix + "_" + faker.UUID()
	}

	return Entry{
		EntryID:   id,
		Title:     faker.Sentence(4),
		Mood:      faker.RandomString(moods),
		Content:   content,
		CreatedAt: NowStamp(s.config.Journal.TimestampFormat),
	}
}
