package util
import (
	"strings"
)

// default output filename for an embedded copy: "photo.bmp" becomes
// "photo_steg.bmp". Files without an extension just get the suffix.
func DeriveOutputName( filename string ) string {
	idx := strings.LastIndex( filename, "." )
	if idx <= 0 {
		return filename + "_steg"
	}
	return filename[:idx] + "_steg" + filename[idx:]
}
