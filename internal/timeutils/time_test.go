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

package timeutils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dynatrace/sendgrid-manager/internal/timeutils"
)

func TestTimeAnchor_IsStable(t *testing.T) {
	first := timeutils.TimeAnchor()
	time.Sleep(2 * time.Millisecond)
	assert.Equal(t, first, timeutils.TimeAnchor())
}

func TestUTCNow(t *testing.T) {
	assert.Equal(t, time.UTC, timeutils.UTCNow().Location())
}
