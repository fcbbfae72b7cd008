package img
import (
	"os"
	"fmt"
)

/*
 * container dispatch: sniff the magic number and hand the bytes to the
 * matching decoder. only lossless true-color containers are supported,
 * LSB planes do not survive palettes or recompression.
 */

type Format uint8

const (
	FormatUnknown Format = iota
	FormatBMP
	FormatPNG
)

func DetectFormat( data []byte ) Format {
	if len(data) >= 2 && data[0] == 0x42 && data[1] == 0x4d {
		// bmp image
		return FormatBMP
	}
	if len(data) >= 8 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		// a png image
		return FormatPNG
	}
	return FormatUnknown
}

func Load( data []byte ) (*PixelGrid, Format, error) {
	switch DetectFormat( data ) {
	case FormatBMP:
		grid, err := LoadBMP( data )
		return grid, FormatBMP, err
	case FormatPNG:
		grid, err := LoadPNG( data )
		return grid, FormatPNG, err
	}
	return nil, FormatUnknown, fmt.Errorf("Unsupported image format.")
}

func Save( grid *PixelGrid, format Format ) ([]byte, error) {
	switch format {
	case FormatBMP:
		return SaveBMP( grid )
	case FormatPNG:
		return SavePNG( grid )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

/*
 * file-level wrappers for the CLI.
 */
func LoadFile( filename string ) (*PixelGrid, Format, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, FormatUnknown, err
	}
	return Load( data )
}

func SaveFile( filename string, grid *PixelGrid, format Format ) error {
	data, err := Save( grid, format )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0660 )
}
