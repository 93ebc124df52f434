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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	toastKey          = "toast"
	toastCacheCleanup = time.Second
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastWarn    ToastKind = "warn"
	ToastError   ToastKind = "error"
)

// Toast is a transient status message.
type Toast struct {
	Kind    ToastKind
	Message string
}

func (t Toast) Icon() string {
	switch t.Kind {
	case ToastWarn:
		return "⚠"
	case ToastError:
		return "✗"
	default:
		return "✓"
	}
}

// NewToastCache creates the cache that expires status messages.
func NewToastCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, toastCacheCleanup)
}

// ShowToast replaces the current toast and restarts its timer.
func ShowToast(c *cache.Cache, kind ToastKind, message string) {
	c.Set(toastKey, Toast{Kind: kind, Message: message}, cache.DefaultExpiration)
}

// CurrentToast returns the toast still on screen, if any.
func CurrentToast(c *cache.Cache) (Toast, bool) {
	val, ok := c.Get(toastKey)
	if !ok {
		return Toast{}, false
	}
	return val.(Toast), true
}
