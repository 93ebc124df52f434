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
	"testing"
	"time"
)

func TestShowToastAndCurrentToast(t *testing.T) {
	c := NewToastCache(time.Minute)

	if _, ok := CurrentToast(c); ok {
		t.Errorf("CurrentToast on a fresh cache should be empty")
	}

	ShowToast(c, ToastSuccess, "Inserted into general tree.")
	ShowToast(c, ToastError, "title is required")

	got, ok := CurrentToast(c)
	if !ok {
		t.Fatalf("CurrentToast: expected a toast")
	}
	if got.Kind != ToastError || got.Message != "title is required" {
		t.Errorf("CurrentToast = %+v; want the latest error toast", got)
	}
	if got.Icon() != "✗" {
		t.Errorf("Icon() = %q; want %q", got.Icon(), "✗")
	}
}

func TestToastExpiration(t *testing.T) {
	c := NewToastCache(100 * time.Millisecond)

	ShowToast(c, ToastWarn, "this should expire soon")
	if _, ok := CurrentToast(c); !ok {
		t.Errorf("toast should be visible right after ShowToast")
	}

	time.Sleep(150 * time.Millisecond)

	if got, ok := CurrentToast(c); ok {
		t.Errorf("After expiration, CurrentToast = %+v; want none", got)
	}
}
