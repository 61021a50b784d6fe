package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

// Ilova bo'ylab ishlatiladigan loggerlar
var (
	InfoLogger  = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLogger  = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

// Init configures logger outputs from LOG_LEVEL (DEBUG, INFO, WARN, ERROR).
// Levels below the configured one are discarded.
func Init() {
	level := strings.ToUpper(strings.TrimSpace(os.Getenv("LOG_LEVEL")))

	InfoLogger.SetOutput(os.Stdout)
	WarnLogger.SetOutput(os.Stdout)
	ErrorLogger.SetOutput(os.Stderr)

	switch level {
	case "ERROR":
		InfoLogger.SetOutput(io.Discard)
		WarnLogger.SetOutput(io.Discard)
	case "WARN":
		InfoLogger.SetOutput(io.Discard)
	}

	// Standart log paketini ham bir xil formatga keltiramiz
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}
