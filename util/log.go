package util
import (
	"os"
	"fmt"
	"sync"
	"time"
)

/*
 * a custom logger: leveled, optionally colored, writes to a file or
 * to stdout when no file is configured.
 */
const (
	Error = 1
	Warning = 2
	Info = 4

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor = "\033[32m"
	CyanColor = "\033[36m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`	// empty means stdout
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`		// bitmask of Error, Warning, Info
}

type Logger struct {
	li		*LoggerInfo
	mtx		sync.Mutex
}

func NewLogger( li *LoggerInfo ) *Logger {
	return &Logger{
		li,
		sync.Mutex{},
	}
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().String() + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.li.Filename == "" {
		fmt.Println( s )
		return
	}
	// just append line
	f, err := os.OpenFile( l.li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
	if err == nil {
		defer f.Close()
		f.WriteString( s + "\n" )
	}
}

func(l *Logger) LogError(err error) {
	if l.li.Mode & Error == Error {
		toWrite := l.prepareString("[ERROR]", RedColor) + err.Error()
		l.LogString( toWrite )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.li.Mode & Warning == Warning {
		toWrite := l.prepareString("[WARNING]", YellowColor) + warning
		l.LogString( toWrite )
	}
}


func(l *Logger) LogInfo( info string ) {
	if l.li.Mode & Info == Info {
		toWrite := l.prepareString( "[INFO]", CyanColor ) + info
		l.LogString( toWrite )
	}
}
