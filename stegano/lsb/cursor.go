package lsb
import (
	"fmt"
	//"github.com/jasonkimprojects/easylsb/util"

	"github.com/jasonkimprojects/easylsb/stegano/img"
)

/*
 * ChannelAccessor is an iterator-ish object for retrieving and changing
 * channel data. It walks every channel of every pixel in a fixed order:
 * red, green, blue inside a pixel, then the next column, then the next
 * row. Past the bottom right pixel it loops back to the top left and
 * counts a wraparound, which moves all reads and writes one bit up
 * towards the most significant bit of each channel.
 *
 * The accessor borrows the grid, it never owns it. Position is held as
 * plain indices so accessors can be copied and inspected freely.
 */
type ChannelAccessor struct {
	grid		*img.PixelGrid
	row		int
	col		int
	color		img.Color
	wraparounds	uint
}

// a fresh accessor points at the red channel of row 0, col 0.
func NewChannelAccessor( grid *img.PixelGrid ) *ChannelAccessor {
	return &ChannelAccessor{
		grid: grid,
		row: 0,
		col: 0,
		color: img.Red,
		wraparounds: 0,
	}
}

// full 8-bit value of the addressed channel.
func(c *ChannelAccessor) Channel() uint8 {
	return c.grid.ChannelAt( c.row, c.col, c.color )
}

// overwrite the addressed channel. The caller keeps every bit except
// the one at the current wraparound intact.
func(c *ChannelAccessor) Replace( v uint8 ) {
	c.grid.SetChannel( c.row, c.col, c.color, v )
}

/*
 * Move to the next channel. The only state-mutating step, called
 * exactly once per bit read or written.
 */
func(c *ChannelAccessor) Next() {
	switch c.color {
	case img.Red:
		// green channel of the current pixel
		c.color = img.Green
	case img.Green:
		// blue channel of the current pixel
		c.color = img.Blue
	case img.Blue:
		c.color = img.Red
		if c.col < c.grid.Width() - 1 {
			// pixel to the right
			c.col++
		} else if c.row < c.grid.Height() - 1 {
			// leftmost pixel of the row below
			c.row++
			c.col = 0
		} else {
			// end of the raster: loop back and count a wraparound
			c.row = 0
			c.col = 0
			c.wraparounds++
		}
		//util.DebugPrintf( "row %d col %d\n", c.row, c.col )
	}
}

func(c *ChannelAccessor) Wraparounds() uint {
	return c.wraparounds
}

// current position, for inspection in tests.
func(c *ChannelAccessor) Position() (int, int, img.Color) {
	return c.row, c.col, c.color
}

/*
 * Masks for the addressed bit of a channel. WrapMask clears the target
 * bit before a new one is OR-ed in, BitMask isolates it on read. For
 * every w in 0..7 the two are exact complements. Any other w is a
 * programming error, the capacity check keeps wraparounds below 8.
 */
func WrapMask( wraparounds uint ) uint8 {
	switch wraparounds {
	case 0:
		return 0b11111110
	case 1:
		return 0b11111101
	case 2:
		return 0b11111011
	case 3:
		return 0b11110111
	case 4:
		return 0b11101111
	case 5:
		return 0b11011111
	case 6:
		return 0b10111111
	case 7:
		return 0b01111111
	}
	panic( fmt.Errorf("Wraparound count out of range: %d", wraparounds) )
}

func BitMask( wraparounds uint ) uint8 {
	if wraparounds >= MaxPlanes {
		panic( fmt.Errorf("Wraparound count out of range: %d", wraparounds) )
	}
	return 1 << wraparounds
}
