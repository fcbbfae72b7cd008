package main
import (
	"os"
	"fmt"
	"strings"
	"path/filepath"

	"github.com/jasonkimprojects/easylsb/util"
	"github.com/jasonkimprojects/easylsb/config"
	"github.com/jasonkimprojects/easylsb/stegano/img"
	"github.com/jasonkimprojects/easylsb/stegano/lsb"
)

const (
	EasyLSBFolder = ".easylsb"
	ConfigFilename = "config.yml"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	conf, err := loadOrCreateConfig()
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	logger := util.NewLogger( &conf.Logger )
	planes := conf.StegConfig.MaxPlanes

	switch os.Args[1] {
	case "-e", "--encode":
		// hide a message inside an image
		if len(os.Args) != 4 && len(os.Args) != 5 {
			fatal("Incorrect number of arguments for encoding!", getHelp)
		}
		msg, err := readMessage( os.Args[2] )
		if err != nil {
			logger.LogError( err )
			fatal("Failed to read message:", err)
		}
		infile := os.Args[3]
		outfile := util.DeriveOutputName( infile )
		if len(os.Args) == 5 {
			outfile = os.Args[4]
		}
		if err = encode( msg, infile, outfile, planes ); err != nil {
			logger.LogError( err )
			fatal("Failed to encode message:", err)
		}
		logger.LogInfo("Message hidden in " + outfile)
		fmt.Println("Message hidden in", outfile)
	case "-d", "--decode":
		// recover a message from an embedded image
		if len(os.Args) != 3 {
			fatal("Incorrect number of arguments for decoding!", getHelp)
		}
		msg, err := decode( os.Args[2], planes )
		if err != nil {
			logger.LogError( err )
			fatal("Failed to decode message:", err)
		}
		// no marker or checksum exists: a foreign image decodes to
		// garbage without any error.
		os.Stdout.Write( msg )
		fmt.Println()
	case "-c", "--capacity":
		// how many message bytes an image can hold
		if len(os.Args) != 3 {
			fatal("Incorrect number of arguments for capacity!", getHelp)
		}
		grid, _, err := img.LoadFile( os.Args[2] )
		if err != nil {
			logger.LogError( err )
			fatal("Failed to load image:", err)
		}
		bits := lsb.Capacity( grid.Width(), grid.Height(), planes )
		maxMsg := uint64(0)
		if bits >= lsb.NumLengthBits {
			maxMsg = (bits - lsb.NumLengthBits) / lsb.BitsPerByte
		}
		if maxMsg > lsb.MaxMsgLength {
			maxMsg = lsb.MaxMsgLength
		}
		fmt.Printf("%d bits across %d planes, up to %d message bytes\n",
			bits, planes, maxMsg)
	default:
		help()
	}
}

func encode( msg []byte, infile, outfile string, planes uint ) error {
	decoy, err := os.ReadFile( infile )
	if err != nil {
		return err
	}
	embedded, err := lsb.Hide( decoy, msg, planes )
	if err != nil {
		return err
	}
	return os.WriteFile( outfile, embedded, 0660 )
}

func decode( infile string, planes uint ) ([]byte, error) {
	decoy, err := os.ReadFile( infile )
	if err != nil {
		return nil, err
	}
	return lsb.Reveal( decoy, planes )
}

// message argument: a literal, or @filename to take the bytes of a file.
func readMessage( arg string ) ([]byte, error) {
	if strings.HasPrefix( arg, "@" ) {
		return os.ReadFile( arg[1:] )
	}
	return []byte(arg), nil
}

// read configuration from the user's home folder, creating the default
// one on the first run.
func loadOrCreateConfig() (*config.FullConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	folder := filepath.Join( home, EasyLSBFolder )
	if _, err = os.Stat( folder ); err != nil {
		if err = os.Mkdir( folder, 0760 ); err != nil {
			return nil, err
		}
	}
	configFile := filepath.Join( folder, ConfigFilename )
	if _, err := os.Stat( configFile ); err != nil {
		conf := config.DefaultConfig()
		if err = config.SaveConfig( configFile, conf ); err != nil {
			return nil, err
		}
		return conf, nil
	}
	return config.LoadConfig( configFile )
}

const getHelp = "Run easylsb <-h or --help> for information."

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: easylsb <mode> [arguments]

The following modes are supported:
	-e, --encode <message> <image_in> [image_out]
			hide a message inside an image. Prefix the
			message with @ to read it from a file. When
			image_out is omitted, "_steg" is appended to
			the input name.
	-d, --decode <image_in>
			recover a hidden message and print it
	-c, --capacity <image_in>
			show how many bytes an image can hold
	-h, --help	show this help

Supported images: BMP and PNG (lossless true-color only).
`

	fmt.Printf("%s", line)
}
