package hpack

import (
	"io"
	"io/ioutil"
	"log"
)

// logged is embedded by Encoder and Decoder to give each an optional
// activity log. By default it discards everything; callers that want
// visibility attach a logger with SetLogger.
type logged struct {
	logger *log.Logger
}

func (lg *logged) initLogging(w io.Writer) {
	if w == nil {
		w = ioutil.Discard
	}
	lg.logger = log.New(w, "", log.Lmicroseconds|log.Lshortfile)
}

// SetLogger replaces the logger, e.g. to direct it at os.Stderr for
// debugging a specific connection.
func (lg *logged) SetLogger(logger *log.Logger) {
	lg.logger = logger
}
