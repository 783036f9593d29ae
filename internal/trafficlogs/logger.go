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

// Package trafficlogs dumps the HTTP traffic with the provider into files in the log directory.
package trafficlogs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"sync"

	corerest "github.com/dynatrace/dynatrace-configuration-as-code-core/api/rest"
	"github.com/spf13/afero"

	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/log/attribute"
	"github.com/dynatrace/sendgrid-manager/internal/secret"
	"github.com/dynatrace/sendgrid-manager/internal/timeutils"
)

const entrySeparator = "\n=========================\n\n"

// FileBasedLogger writes requests and responses into two files. Files are created on the first record.
type FileBasedLogger struct {
	fs            afero.Fs
	reqFilePath   string
	respFilePath  string
	reqLogFile    afero.File
	respLogFile   afero.File
	reqBufWriter  *bufio.Writer
	respBufWriter *bufio.Writer
	lock          sync.Mutex
}

// NewFileBased creates a FileBasedLogger writing to RequestFilePath and ResponseFilePath on fs.
func NewFileBased(fs afero.Fs) *FileBasedLogger {
	return &FileBasedLogger{
		fs:           fs,
		reqFilePath:  RequestFilePath(),
		respFilePath: ResponseFilePath(),
	}
}

// RequestFilePath returns the full path of an HTTP request log file for the current execution time - if no traffic logs are written (yet) no file may exist at this path.
func RequestFilePath() string {
	return filepath.Join(log.LogDirectory, timeutils.TimeAnchor().Format(log.LogFileTimestampPrefixFormat)+"-req.log")
}

// ResponseFilePath returns the full path of an HTTP response log file for the current execution time - if no traffic logs are written (yet) no file may exist at this path.
func ResponseFilePath() string {
	return filepath.Join(log.LogDirectory, timeutils.TimeAnchor().Format(log.LogFileTimestampPrefixFormat)+"-resp.log")
}

// Listener returns an HTTP listener for the REST client that passes every record to LogToFiles.
func (l *FileBasedLogger) Listener() *corerest.HTTPListener {
	return &corerest.HTTPListener{Callback: l.LogToFiles}
}

// LogToFiles takes a record containing request and response information and tries to write it into the files
// created by this logger.
func (l *FileBasedLogger) LogToFiles(record corerest.RequestResponse) {
	if req, ok := record.IsRequest(); ok {
		if err := l.logRequest(record.ID, req); err != nil {
			l.logError(record.ID, "request", err)
		}
	}
	if resp, ok := record.IsResponse(); ok {
		if err := l.logResponse(record.ID, resp); err != nil {
			l.logError(record.ID, "response", err)
		}
	}
}

// Close flushes and closes all files written so far.
func (l *FileBasedLogger) Close() error {
	l.lock.Lock()
	defer l.lock.Unlock()

	var errs []error
	if l.reqLogFile != nil {
		errs = append(errs, l.reqBufWriter.Flush(), l.reqLogFile.Close())
		l.reqLogFile = nil
	}
	if l.respLogFile != nil {
		errs = append(errs, l.respBufWriter.Flush(), l.respLogFile.Close())
		l.respLogFile = nil
	}

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("failed to close traffic logs: %w", err)
		}
	}
	return nil
}

func (l *FileBasedLogger) logRequest(id string, request *http.Request) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	w, err := l.open(&l.reqLogFile, &l.reqBufWriter, l.reqFilePath)
	if err != nil {
		return fmt.Errorf("unable to open file for logging requests: %w", err)
	}

	// never log the API key
	req := request.Clone(request.Context())
	req.Header.Del("Authorization")

	dump, err := httputil.DumpRequestOut(req, false)
	if err != nil {
		return err
	}

	return writeEntry(w, id, dump, request.Body)
}

func (l *FileBasedLogger) logResponse(id string, response *http.Response) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	w, err := l.open(&l.respLogFile, &l.respBufWriter, l.respFilePath)
	if err != nil {
		return fmt.Errorf("unable to open file for logging responses: %w", err)
	}

	dump, err := httputil.DumpResponse(response, false)
	if err != nil {
		return err
	}

	return writeEntry(w, id, dump, response.Body)
}

func writeEntry(w *bufio.Writer, id string, dump []byte, body io.ReadCloser) error {
	if _, err := fmt.Fprintf(w, "Request-ID: %s\n", id); err != nil {
		return err
	}

	if _, err := w.Write(dump); err != nil {
		return err
	}

	if body != nil {
		defer body.Close()
		data, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, bytes.NewReader(secret.Mask(data))); err != nil {
			return err
		}
	}

	_, err := w.WriteString(entrySeparator)
	return err
}

func (l *FileBasedLogger) open(file *afero.File, w **bufio.Writer, path string) (*bufio.Writer, error) {
	if *file != nil {
		return *w, nil
	}

	if err := l.fs.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, fmt.Errorf("unable to create log directory %s: %w", filepath.Dir(path), err)
	}

	f, err := l.fs.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	*file = f
	*w = bufio.NewWriter(f)
	return *w, nil
}

func (l *FileBasedLogger) logError(requestID, logType string, err error) {
	logMessage := fmt.Sprintf("error while writing %s log", logType)
	if requestID != "" {
		logMessage += fmt.Sprintf(" for id %q", requestID)
	}

	log.With(attribute.Error(err)).Warn(logMessage+": %v", err)
}
