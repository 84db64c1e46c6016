package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "Info: ", log.LstdFlags|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "Warn: ", log.LstdFlags|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "Err: ", log.LstdFlags|log.Lshortfile)
)
