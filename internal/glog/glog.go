// Package glog holds the leveled loggers used by the graph harness.
package glog

import (
	"io"
	"log"
	"os"
	"sync"
)

const (
	InfoLevel = iota
	ErrorLevel
	Disabled
)

var (
	errorLog = log.New(os.Stdout, "[error] ", log.LstdFlags|log.Lshortfile)
	infoLog  = log.New(os.Stdout, "[info] ", log.LstdFlags)
	loggers  = []*log.Logger{errorLog, infoLog}
	mux      sync.Mutex
	out      io.Writer = os.Stdout
)

var (
	ErrorP  = errorLog.Println
	ErrorPf = errorLog.Printf
	Info    = infoLog.Println
	InfoF   = infoLog.Printf
)

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	mux.Lock()
	defer mux.Unlock()

	out = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}

// SetLevel discards messages below level.
func SetLevel(level int) {
	mux.Lock()
	defer mux.Unlock()

	for _, logger := range loggers {
		logger.SetOutput(out)
	}

	if ErrorLevel < level {
		errorLog.SetOutput(io.Discard)
	}
	if InfoLevel < level {
		infoLog.SetOutput(io.Discard)
	}
}
