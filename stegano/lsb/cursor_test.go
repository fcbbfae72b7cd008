package lsb
import (
	"testing"

	"github.com/jasonkimprojects/easylsb/stegano/img"
)

func TestMasksAreComplements( t *testing.T ) {
	for w := uint(0); w < MaxPlanes; w++ {
		if WrapMask(w) & BitMask(w) != 0 {
			t.Errorf("WrapMask(%d) and BitMask(%d) overlap", w, w)
		}
		if WrapMask(w) | BitMask(w) != 0xff {
			t.Errorf("WrapMask(%d) and BitMask(%d) do not cover the byte", w, w)
		}
	}
}

func TestMaskPanicsOutOfRange( t *testing.T ) {
	checkPanic := func( name string, f func() ) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s accepted a wraparound count above 7", name)
			}
		}()
		f()
	}
	checkPanic( "WrapMask", func() { WrapMask(8) } )
	checkPanic( "BitMask", func() { BitMask(8) } )
}

func TestTraversalOrder( t *testing.T ) {
	grid := img.NewPixelGrid( 2, 2 )
	c := NewChannelAccessor( grid )

	expected := []struct {
		row	int
		col	int
		color	img.Color
	}{
		{0, 0, img.Red},
		{0, 0, img.Green},
		{0, 0, img.Blue},
		{0, 1, img.Red},
		{0, 1, img.Green},
		{0, 1, img.Blue},
		{1, 0, img.Red},
		{1, 0, img.Green},
		{1, 0, img.Blue},
		{1, 1, img.Red},
		{1, 1, img.Green},
		{1, 1, img.Blue},
		// wrapped around
		{0, 0, img.Red},
	}

	for i, e := range expected {
		row, col, color := c.Position()
		if row != e.row || col != e.col || color != e.color {
			t.Errorf("Step %d: expected (%d, %d, %d), got (%d, %d, %d)",
				i, e.row, e.col, e.color, row, col, color)
		}
		c.Next()
	}
	if c.Wraparounds() != 1 {
		t.Errorf("Expected 1 wraparound after a full pass, got %d", c.Wraparounds())
	}
}

func TestWraparoundBoundary( t *testing.T ) {
	width, height := 3, 2
	grid := img.NewPixelGrid( width, height )
	c := NewChannelAccessor( grid )

	steps := 3 * width * height
	for i := 0; i < steps; i++ {
		if c.Wraparounds() != 0 {
			t.Fatalf("Wraparound counted too early, at step %d", i)
		}
		c.Next()
	}
	row, col, color := c.Position()
	if c.Wraparounds() != 1 || row != 0 || col != 0 || color != img.Red {
		t.Errorf("Expected reset to (0, 0, red) with 1 wraparound, got (%d, %d, %d) with %d",
			row, col, color, c.Wraparounds())
	}
}

func TestTraversalDeterminism( t *testing.T ) {
	a := NewChannelAccessor( img.NewPixelGrid( 5, 3 ) )
	b := NewChannelAccessor( img.NewPixelGrid( 5, 3 ) )

	for i := 0; i < 5 * 3 * 3 * 4; i++ {
		aRow, aCol, aColor := a.Position()
		bRow, bCol, bColor := b.Position()
		if aRow != bRow || aCol != bCol || aColor != bColor ||
			a.Wraparounds() != b.Wraparounds() {
			t.Fatalf("Accessors diverged at step %d", i)
		}
		a.Next()
		b.Next()
	}
}

func TestReplaceTouchesOnlyAddressedChannel( t *testing.T ) {
	grid := img.NewPixelGrid( 2, 1 )
	c := NewChannelAccessor( grid )
	c.Next()	// green of pixel (0,0)
	c.Replace( 0xab )

	if grid.ChannelAt( 0, 0, img.Green ) != 0xab {
		t.Errorf("Addressed channel was not replaced")
	}
	if grid.ChannelAt( 0, 0, img.Red ) != 0 ||
		grid.ChannelAt( 0, 0, img.Blue ) != 0 ||
		grid.ChannelAt( 0, 1, img.Red ) != 0 {
		t.Errorf("Replace leaked into other channels")
	}
}
