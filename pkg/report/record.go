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

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"
)

type RecordType = string

const (
	// TypeSync marks records written by the sync command.
	TypeSync RecordType = "SYNC"
	// TypeCheck marks records written by the check command.
	TypeCheck RecordType = "CHECK"
)

// Record is a single line of the report file.
type Record struct {
	Type       RecordType `json:"type"`
	Time       JSONTime   `json:"time"`
	RunID      string     `json:"runId,omitempty"`
	TemplateID string     `json:"templateId,omitempty"`
	Name       string     `json:"name"`
	State      string     `json:"state"`
	Details    []Detail   `json:"details,omitempty"`
	Error      string     `json:"error,omitempty"`
}

type JSONTime time.Time

func (t JSONTime) MarshalJSON() ([]byte, error) {
	s := time.Time(t).Format(time.RFC3339)
	return json.Marshal(s)
}

func (t *JSONTime) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	tVal, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}

	*t = JSONTime(tVal)
	return nil
}

// ReadReportFile reads all records of a report file.
func ReadReportFile(fs afero.Fs, filename string) ([]Record, error) {
	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	s := bufio.NewScanner(f)
	for s.Scan() {
		var r Record
		if err := json.Unmarshal(s.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("invalid record in %q: %w", filename, err)
		}
		records = append(records, r)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
