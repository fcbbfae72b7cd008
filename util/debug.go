package util
import (
	"log"
)

const (
	// flip on while hunting traversal bugs, decoded messages go to
	// stdout so debug noise stays off by default.
	DebugMode = false
)


func DebugPrintln( args ...any ) {
	if DebugMode == true {
		log.Println( args... )
	}
}

func DebugPrintf( format string, args ...any ) {
	if DebugMode == true {
		log.Printf( format, args... )
	}
}
