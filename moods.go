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
	"math/rand"
)

var moods = []string{
	"Calm",
	"Curious",
	"Happy",
	"Tired",
	"Inspired",
	"Anxious",
	"Grateful",
	"Focused",
	"Restless",
	"Hopeful",
	"Nostalgic",
	"Proud",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func RandomMood() string {
	return pickRandomString(moods)
}
