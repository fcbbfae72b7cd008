package img
import (
	"bytes"
	"image/png"
)

func LoadPNG( data []byte ) (*PixelGrid, error) {
	decoded, err := png.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	return FromImage( decoded ), nil
}

func SavePNG( grid *PixelGrid ) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode( buf, grid.ToImage() ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
