package logsvc

import (
	glog "github.com/labstack/gommon/log"

	"github.com/bluejays/schoolsys/core"
)

// ConsoleLogger writes leveled, prefixed lines to stderr.
type ConsoleLogger struct {
	l *glog.Logger
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(prefix string, debug bool) *ConsoleLogger {
	l := glog.New(prefix)
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	if debug {
		l.SetLevel(glog.DEBUG)
	} else {
		l.SetLevel(glog.INFO)
	}
	return &ConsoleLogger{l: l}
}

func (c *ConsoleLogger) args(msg string, args []interface{}) []interface{} {
	return append([]interface{}{msg}, args...)
}

func (c *ConsoleLogger) Debug(msg string, args ...interface{}) { c.l.Debug(c.args(msg, args)...) }
func (c *ConsoleLogger) Info(msg string, args ...interface{})  { c.l.Info(c.args(msg, args)...) }
func (c *ConsoleLogger) Warn(msg string, args ...interface{})  { c.l.Warn(c.args(msg, args)...) }
func (c *ConsoleLogger) Error(msg string, args ...interface{}) { c.l.Error(c.args(msg, args)...) }
func (c *ConsoleLogger) Fatal(msg string, args ...interface{}) { c.l.Fatal(c.args(msg, args)...) }
