// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"sync"
)

// Observer is notified by Encode and Decode. Implementations must be safe
// for concurrent use.
type Observer interface {
	Encoded(channel, message string, bits int)
	Decoded(channel, message string, bits int)
	Failed(channel, op string, err error)
}

type nopObserver struct{}

func (nopObserver) Encoded(string, string, int) {}
func (nopObserver) Decoded(string, string, int) {}
func (nopObserver) Failed(string, string, error) {}

var (
	observerMu sync.RWMutex
	observer   Observer = nopObserver{}
)

// SetObserver registers o for every later Encode and Decode call. A nil o
// removes the current observer.
func SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	observerMu.Lock()
	observer = o
	observerMu.Unlock()
}

func currentObserver() Observer {
	observerMu.RLock()
	defer observerMu.RUnlock()
	return observer
}
