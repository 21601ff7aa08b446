package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"notesapi/utils/options"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

var (
	F *os.File

	DefaultPrefix      = ""
	DefaultCallerDepth = 2

	logger     = log.New(os.Stderr, DefaultPrefix, log.LstdFlags)
	logPrefix  = ""
	levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
	logLevel   = INFO
)

// ConfigInit applies the configured log level and, when a log directory
// is set, switches output from stderr to a dated file under it.
func ConfigInit() {
	switch options.Conf.Log.LogLevel {
	case "debug":
		logLevel = DEBUG
	case "info":
		logLevel = INFO
	case "warning":
		logLevel = WARNING
	case "error":
		logLevel = ERROR
	case "fatal":
		logLevel = FATAL
	default:
		logLevel = INFO
	}

	if options.Conf.Log.LogDir == "" {
		return
	}
	l := &Log{
		options.Conf.Log.LogDir,
		options.Conf.Log.LogFile,
		options.Conf.Log.LogFileExt,
		options.Conf.Log.TimeFormat,
	}
	F = l.openLogFile(l.getLogFileFullPath())
	logger = log.New(F, DefaultPrefix, log.LstdFlags)
}

func Debug(v ...interface{}) {
	if logLevel <= DEBUG {
		setPrefix(DEBUG)
		logger.Println(v...)
	}
}

func Info(v ...interface{}) {
	if logLevel <= INFO {
		setPrefix(INFO)
		logger.Println(v...)
	}
}

func Warn(v ...interface{}) {
	if logLevel <= WARNING {
		setPrefix(WARNING)
		logger.Println(v...)
	}
}

func Error(v ...interface{}) {
	if logLevel <= ERROR {
		setPrefix(ERROR)
		logger.Printf("%+v", v)
	}
}

func Fatal(v ...interface{}) {
	setPrefix(FATAL)
	logger.Fatalln(v...)
}

func setPrefix(level Level) {
	_, file, line, ok := runtime.Caller(DefaultCallerDepth)
	if ok {
		logPrefix = fmt.Sprintf("[%s][%s:%d]", levelFlags[level], filepath.Base(file), line)
	} else {
		logPrefix = fmt.Sprintf("[%s]", levelFlags[level])
	}

	logger.SetPrefix(logPrefix)
}
