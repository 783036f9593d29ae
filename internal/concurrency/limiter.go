/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package concurrency

import (
	"math"
	"sync"
)

// Limiter limits the number of callbacks running at the same time.
// Instead of starting goroutines using `go func()...`, use `limiter.Execute()`.
// After usage, close the limiter using `limiter.Close()`.
type Limiter struct {
	slots chan struct{}
}

var (
	_ sync.Locker = (*Limiter)(nil) // implement the Locker interface to let 'go vet' find copies by value that we don't want to have.
)

func (l *Limiter) Lock()   {}
func (l *Limiter) Unlock() {}

// NewLimiter creates a new limiter with the given amount of max concurrent running functions.
// maxConcurrent <= 0 is equivalent to an unlimited Limiter.
func NewLimiter(maxConcurrent int) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = math.MaxInt
	}
	return &Limiter{
		slots: make(chan struct{}, maxConcurrent),
	}
}

// Execute runs callback in a new goroutine once a slot is free.
// Calling Execute on a closed limiter panics.
func (l *Limiter) Execute(callback func()) {
	go func() {
		l.slots <- struct{}{}
		defer func() {
			<-l.slots
		}()

		callback()
	}()
}

// ExecuteBlocking runs callback once a slot is free and returns after it finished.
func (l *Limiter) ExecuteBlocking(callback func()) {
	done := make(chan struct{})
	l.Execute(func() {
		defer close(done)
		callback()
	})
	<-done
}

// Close cleans up the limiter. Running callbacks finish, but no new ones can be started.
// Closing the limiter multiple times panics.
func (l *Limiter) Close() {
	close(l.slots)
}

// Map calls f for every item using l and returns the results in the order of items.
// It returns once all calls finished.
func Map[T, R any](l *Limiter, items []T, f func(i int, item T) R) []R {
	results := make([]R, len(items))

	wg := sync.WaitGroup{}
	wg.Add(len(items))
	for i, item := range items {
		l.Execute(func() {
			defer wg.Done()
			results[i] = f(i, item)
		})
	}
	wg.Wait()

	return results
}
