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

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dynatrace/sendgrid-manager/internal/timeutils"
)

const (
	LogDirectory                 = ".logs"
	LogFileTimestampPrefixFormat = "20060102-150405"
)

// CtxKeyTemplate context key used for contextual template information
type CtxKeyTemplate struct{}

// CtxValTemplate context value used for contextual template information
type CtxValTemplate struct {
	ID   string
	Name string
}

// CtxKeyRunID context key used to correlate all logs of a single invocation
type CtxKeyRunID struct{}

// CtxKeyCommand context key used for the name of the executed command
type CtxKeyCommand struct{}

// WithTemplate returns a context carrying template information picked up by the ContextHandler.
func WithTemplate(ctx context.Context, id, name string) context.Context {
	return context.WithValue(ctx, CtxKeyTemplate{}, CtxValTemplate{ID: id, Name: name})
}

func Fatal(msg string, a ...interface{}) {
	slog.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}

func Error(msg string, a ...interface{}) {
	slog.Error(fmt.Sprintf(msg, a...))
}

func Warn(msg string, a ...interface{}) {
	slog.Warn(fmt.Sprintf(msg, a...))
}

func Info(msg string, a ...interface{}) {
	slog.Info(fmt.Sprintf(msg, a...))
}

func Debug(msg string, a ...interface{}) {
	slog.Debug(fmt.Sprintf(msg, a...))
}

var logFile afero.File
var errorFile afero.File

// PrepareLogging sets up the default slog.Logger.
// Records are written to stderr, to loggerSpy if not nil, to log files in LogDirectory if fileLogging is set and
// to an OpenTelemetry endpoint if one is configured.
func PrepareLogging(ctx context.Context, fs afero.Fs, verbose bool, loggerSpy io.Writer, fileLogging bool) {
	slog.SetDefault(slog.New(prepareHandler(ctx, fs, verbose, loggerSpy, fileLogging)))
}

func prepareHandler(ctx context.Context, fs afero.Fs, verbose bool, loggerSpy io.Writer, fileLogging bool) slog.Handler {
	level := getLevelFromVerbose(verbose)

	var handlers []slog.Handler

	if fileLogging && fs != nil && logFile == nil {
		lf, ef, err := PrepareLogFiles(fs)
		if err != nil {
			Warn("Error preparing log files: %s", err)
		}
		logFile = lf
		errorFile = ef
	}

	if logFile != nil {
		handlers = append(handlers, getHandler(logFile, getHandlerOptions(level)))
	}

	if errorFile != nil {
		handlers = append(handlers, getHandler(errorFile, getHandlerOptions(slog.LevelError)))
	}

	if loggerSpy != nil {
		handlers = append(handlers, getHandler(loggerSpy, getHandlerOptions(level)))
	}

	if otelHandler := initOpenTelemetryHandler(ctx); otelHandler != nil {
		handlers = append(handlers, otelHandler)
	}

	consoleHandler := getHandler(os.Stderr, getHandlerOptions(level))
	if shouldAddColor() {
		consoleHandler = NewColorHandler(consoleHandler)
	}
	handlers = append(handlers, consoleHandler)

	if len(handlers) == 1 {
		return NewContextHandler(handlers[0])
	}
	return NewContextHandler(NewTeeHandler(handlers...))
}

func getLevelFromVerbose(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// LogFilePath returns the path of a logfile for the current execution time - depending on when this function is called such a file may not yet exist
func LogFilePath() string {
	timestamp := timeutils.TimeAnchor().Format(LogFileTimestampPrefixFormat)
	return filepath.Join(LogDirectory, timestamp+".log")
}

// ErrorFilePath returns the path of an error logfile for the current execution time - depending on when this function is called such a file may not yet exist
func ErrorFilePath() string {
	timestamp := timeutils.TimeAnchor().Format(LogFileTimestampPrefixFormat)
	return filepath.Join(LogDirectory, timestamp+"-errors.log")
}

// PrepareLogFiles tries to create a LogDirectory (if none exists) and a file each to write all logs and filtered error
// logs to. As errors in preparing log files are viewed as optional for the logger setup using this method, partial data
// may be returned in case of errors.
// If log directory or logFile creation fails, no log files are returned.
// If errLog creation fails, a valid logFile is still being returned with an error.
func PrepareLogFiles(fs afero.Fs) (logFile afero.File, errFile afero.File, err error) {
	if err := fs.MkdirAll(LogDirectory, 0777); err != nil {
		return nil, nil, fmt.Errorf("unable to prepare log directory %s: %w", LogDirectory, err)
	}

	logFilePath := LogFilePath()
	logFile, err = fs.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to prepare log file %s: %w", logFilePath, err)
	}

	errFilePath := ErrorFilePath()
	errFile, err = fs.OpenFile(errFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return logFile, nil, fmt.Errorf("unable to prepare error file %s: %w", errFilePath, err)
	}

	return logFile, errFile, nil
}
