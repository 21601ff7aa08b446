package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

type Log struct {
	LogDir     string
	LogFile    string
	LogFileExt string
	TimeFormat string
}

func (l *Log) getLogFileFullPath() string {
	name := fmt.Sprintf("%s%s.%s", l.LogFile, time.Now().Format(l.TimeFormat), l.LogFileExt)
	return filepath.Join(l.LogDir, name)
}

func (l *Log) openLogFile(filePath string) *os.File {
	_, err := os.Stat(filePath)
	switch {
	case os.IsNotExist(err):
		l.mkDir()
	case os.IsPermission(err):
		log.Fatalf("Permission :%v", err)
	}

	handle, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("Fail to OpenFile :%v", err)
	}

	return handle
}

func (l *Log) mkDir() {
	if err := os.MkdirAll(l.LogDir, os.ModePerm); err != nil {
		panic(err)
	}
}
