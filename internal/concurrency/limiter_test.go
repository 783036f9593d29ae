//go:build unit

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
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLimiter(t *testing.T) {
	limiter := NewLimiter(47)

	assert.Equal(t, 47, cap(limiter.slots), "Capacity is not correct")
	assert.Equal(t, 0, len(limiter.slots), "Limiter should be empty")
}

func TestCallbackExecutions(t *testing.T) {
	tests := []struct {
		name           string
		cap, callbacks int
	}{
		{"More callbacks than capacity (sequential)", 1, 100},
		{"More callbacks than capacity (parallel)", 100, 10000},
		{"More capacity than callbacks", 10000, 10},
		{"Same amount", 10, 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			limiter := NewLimiter(test.cap)

			wg := sync.WaitGroup{}
			wg.Add(test.callbacks)

			counter := int32(test.callbacks)
			for i := 0; i < test.callbacks; i++ {
				limiter.Execute(func() {
					atomic.AddInt32(&counter, -1)
					wg.Done()
				})
			}
			wg.Wait()

			assert.Equal(t, int32(0), atomic.LoadInt32(&counter), "Counter should be 0")
		})
	}
}

func TestLimiterNeverExceedsMaximum(t *testing.T) {
	limiter := NewLimiter(3)

	var running, maxRunning int32
	items := make([]int, 50)

	Map(limiter, items, func(int, int) struct{} {
		n := atomic.AddInt32(&running, 1)
		for {
			m := atomic.LoadInt32(&maxRunning)
			if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return struct{}{}
	})

	assert.LessOrEqual(t, atomic.LoadInt32(&maxRunning), int32(3))
}

func TestLimiterWithZeroLimit(t *testing.T) {
	limiter := NewLimiter(0)
	called := false
	limiter.ExecuteBlocking(func() {
		called = true
	})
	assert.True(t, called)
}

func TestMap_KeepsOrder(t *testing.T) {
	limiter := NewLimiter(4)
	defer limiter.Close()

	got := Map(limiter, []string{"a", "b", "c", "d", "e"}, func(i int, s string) string {
		return s + s
	})

	assert.Equal(t, []string{"aa", "bb", "cc", "dd", "ee"}, got)
}

func TestMap_Empty(t *testing.T) {
	got := Map(NewLimiter(1), []int{}, func(i int, v int) int { return v })
	assert.Empty(t, got)
}
