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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/timeutils"
	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
)

type reporterContextKey struct{}

// NewContextWithReporter returns a copy of ctx carrying r.
func NewContextWithReporter(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterContextKey{}, r)
}

// GetReporterFromContextOrDiscard returns the Reporter of ctx, or a Reporter discarding everything if there is none.
func GetReporterFromContextOrDiscard(ctx context.Context) Reporter {
	v := ctx.Value(reporterContextKey{})
	if v == nil {
		return &discardReporter{}
	}
	switch v := v.(type) {
	case Reporter:
		return v
	default:
		panic(fmt.Sprintf("unexpected value type for reporter context key: %T", v))
	}
}

// Reporter records the outcome of every processed template.
type Reporter interface {
	// ReportOutcome records o as a record of the given type.
	ReportOutcome(kind RecordType, o reconcile.Outcome)

	// GetSummary returns a summary of all recorded outcomes. It is only complete after Stop.
	GetSummary() string

	// Stop waits until all records are written. No outcomes may be reported afterward.
	Stop()
}

type defaultReporter struct {
	queue   chan Record
	mu      sync.Mutex
	wg      sync.WaitGroup
	clock   timeutils.Clock
	runID   string
	started time.Time
	ended   time.Time
	counts  map[string]int
}

// NewDefaultReporter creates a Reporter writing one JSON record per line to reportFilePath.
func NewDefaultReporter(fs afero.Fs, reportFilePath string, runID string) Reporter {
	return NewDefaultReporterWithClockFunc(fs, reportFilePath, runID, timeutils.UTCNow)
}

// NewDefaultReporterWithClockFunc is NewDefaultReporter with a custom Clock.
func NewDefaultReporterWithClockFunc(fs afero.Fs, reportFilePath string, runID string, clock timeutils.Clock) Reporter {
	r := &defaultReporter{
		clock:   clock,
		runID:   runID,
		started: clock(),
		queue:   make(chan Record, 32),
		counts:  make(map[string]int),
	}
	r.ended = r.started

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.runRecorder(fs, reportFilePath); err != nil {
			log.Error("Error recording report: %s", err)
		}
	}()
	return r
}

func (d *defaultReporter) runRecorder(fs afero.Fs, reportFilePath string) error {
	file, err := fs.OpenFile(reportFilePath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		d.drain()
		return fmt.Errorf("error open record file: %w", err)
	}

	writer := bufio.NewWriter(file)
	for r := range d.queue {
		d.updateSummaryFromRecord(r)

		b, err := json.Marshal(r)
		if err != nil {
			d.drain()
			return fmt.Errorf("unable to convert record: %w", err)
		}

		if _, err := writer.Write(b); err != nil {
			d.drain()
			return fmt.Errorf("unable to write record: %w", err)
		}

		if _, err := writer.WriteString("\n"); err != nil {
			d.drain()
			return fmt.Errorf("unable to write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("unable to flush record file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close record file: %w", err)
	}
	return nil
}

// drain consumes the remaining records once they can no longer be written.
func (d *defaultReporter) drain() {
	for r := range d.queue {
		d.updateSummaryFromRecord(r)
	}
}

func (d *defaultReporter) updateSummaryFromRecord(r Record) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ended = time.Time(r.Time)
	d.counts[r.State]++
}

func (d *defaultReporter) ReportOutcome(kind RecordType, o reconcile.Outcome) {
	d.queue <- Record{
		Type:       kind,
		Time:       JSONTime(d.clock()),
		RunID:      d.runID,
		TemplateID: o.TemplateID,
		Name:       o.Name,
		State:      string(o.State),
		Details:    DetailsOf(o),
		Error:      convertErrorToString(o.Err),
	}
}

func convertErrorToString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (d *defaultReporter) GetSummary() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	sb := strings.Builder{}
	for _, s := range reconcile.States() {
		if n := d.counts[string(s)]; n > 0 {
			sb.WriteString(fmt.Sprintf("Templates %s: %d\n", s, n))
		}
	}
	sb.WriteString(fmt.Sprintf("Start time: %v\n", d.started.Format("20060102-150405")))
	sb.WriteString(fmt.Sprintf("End time: %v\n", d.ended.Format("20060102-150405")))
	sb.WriteString(fmt.Sprintf("Duration: %v\n", d.ended.Sub(d.started)))
	return sb.String()
}

func (d *defaultReporter) Stop() {
	close(d.queue)
	d.wg.Wait()
}

type discardReporter struct{}

func (*discardReporter) ReportOutcome(RecordType, reconcile.Outcome) {}
func (*discardReporter) GetSummary() string                          { return "" }
func (*discardReporter) Stop()                                       {}
