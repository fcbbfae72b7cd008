package img
import (
	"fmt"
	"image"
	"image/color"
)

/*
 * PixelGrid is a mutable 2-D grid of 8-bit RGB triples, row-major.
 * It is the only view of an image the codec ever sees: the container
 * format (headers, padding, compression) stays in this package.
 */

// one of the three color channels of a pixel.
type Color uint8

const (
	Red Color = iota
	Green
	Blue

	channelsPerPixel = 3
)

type PixelGrid struct {
	width	int
	height	int
	pix	[]uint8		// 3 bytes per pixel, row-major
	alpha	[]uint8		// kept so transparent decoys survive a round trip
}

func NewPixelGrid( width, height int ) *PixelGrid {
	alpha := make( []uint8, width * height )
	for i := range alpha {
		alpha[i] = 0xff
	}
	return &PixelGrid{
		width: width,
		height: height,
		pix: make( []uint8, width * height * channelsPerPixel ),
		alpha: alpha,
	}
}

// build a grid from any decoded image.
func FromImage( src image.Image ) *PixelGrid {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	grid := NewPixelGrid( width, height )

	// straight alpha path: RGBA() premultiplies, which would corrupt
	// channel values of transparent pixels.
	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				px := nrgba.NRGBAAt( bounds.Min.X + x, bounds.Min.Y + y )
				grid.SetChannel( y, x, Red, px.R )
				grid.SetChannel( y, x, Green, px.G )
				grid.SetChannel( y, x, Blue, px.B )
				grid.alpha[ y * width + x ] = px.A
			}
		}
		return grid
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := src.At( bounds.Min.X + x, bounds.Min.Y + y ).RGBA()
			grid.SetChannel( y, x, Red, uint8(r >> 8) )
			grid.SetChannel( y, x, Green, uint8(g >> 8) )
			grid.SetChannel( y, x, Blue, uint8(b >> 8) )
			grid.alpha[ y * width + x ] = uint8(a >> 8)
		}
	}
	return grid
}

func(g *PixelGrid) Width() int {
	return g.width
}

func(g *PixelGrid) Height() int {
	return g.height
}

func(g *PixelGrid) ChannelAt( row, col int, c Color ) uint8 {
	return g.pix[ g.offset( row, col, c ) ]
}

func(g *PixelGrid) SetChannel( row, col int, c Color, v uint8 ) {
	g.pix[ g.offset( row, col, c ) ] = v
}

func(g *PixelGrid) offset( row, col int, c Color ) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width || c > Blue {
		panic( fmt.Errorf("Pixel index out of range: row %d col %d channel %d", row, col, c) )
	}
	return (row * g.width + col) * channelsPerPixel + int(c)
}

// materialize the grid back into an image for the container encoders.
func(g *PixelGrid) ToImage() *image.NRGBA {
	out := image.NewNRGBA( image.Rect( 0, 0, g.width, g.height ) )
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out.SetNRGBA( x, y, color.NRGBA{
				g.ChannelAt( y, x, Red ),
				g.ChannelAt( y, x, Green ),
				g.ChannelAt( y, x, Blue ),
				g.alpha[ y * g.width + x ],
			})
		}
	}
	return out
}

// deep copy, for callers which must not touch the original.
func(g *PixelGrid) Clone() *PixelGrid {
	clone := NewPixelGrid( g.width, g.height )
	copy( clone.pix, g.pix )
	copy( clone.alpha, g.alpha )
	return clone
}
