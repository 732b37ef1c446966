package cli

import (
	"time"

	"codeberg.org/snonux/kirlot/internal/logging"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Direction  string
	InputFile  string
	OutputPath string
	BatchFile  string
	CSVPath    string
	MaxWords   int
	Stats      bool
	LogLevel   string

	// History flags
	History     bool
	HistoryDB   string
	ListHistory int
	Archive     bool

	// Server flags
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Direction:    "auto",
		LogLevel:     logging.DefaultLevel,
		HistoryDB:    DefaultHistoryPath(),
		Addr:         ":8080",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		MaxBodyBytes: 1 << 20,
	}
}
