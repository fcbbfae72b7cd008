package img
import (
	"bytes"
	"golang.org/x/image/bmp"
)

func LoadBMP( data []byte ) (*PixelGrid, error) {
	decoded, err := bmp.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	return FromImage( decoded ), nil
}

func SaveBMP( grid *PixelGrid ) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, grid.ToImage() ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
