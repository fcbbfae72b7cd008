package config
import (
	"os"
	"testing"
	"path/filepath"

	"github.com/jasonkimprojects/easylsb/util"
)

func TestSaveAndLoadConfig( t *testing.T ) {
	conf := FullConfig{
		SteganoConfig{
			MaxPlanes: 4,
		},
		util.LoggerInfo{
			Filename: "test.log",
			IsColored: true,
			SaveTime: true,
			Mode: util.Error,
		},
	}
	filename := filepath.Join( t.TempDir(), "easylsb-test-config.yml" )
	if err := SaveConfig(filename, &conf); err != nil {
		t.Errorf("Failed to save configuration: %s", err.Error())
	}
	conf2, err := LoadConfig( filename )
	if err != nil {
		t.Errorf("Failed to load configuration: %s", err.Error())
	}
	if conf.StegConfig.MaxPlanes != conf2.StegConfig.MaxPlanes ||
		conf.Logger.Filename != conf2.Logger.Filename ||
		conf.Logger.Mode != conf2.Logger.Mode {
		t.Errorf("[CRITICAL] Configuration was changed during save/load process")
	}
}

func TestLoadConfigRejectsBadPlanes( t *testing.T ) {
	planes := []uint{ 0, 9, 100 }
	for _, p := range planes {
		conf := DefaultConfig()
		conf.StegConfig.MaxPlanes = p
		filename := filepath.Join( t.TempDir(), "easylsb-bad-config.yml" )
		if err := SaveConfig( filename, conf ); err != nil {
			t.Errorf("Failed to save configuration: %s", err.Error())
		}
		if _, err := LoadConfig( filename ); err == nil {
			t.Errorf("Expected an error for max_planes = %d", p)
		}
		os.Remove( filename )
	}
}

func TestDefaultConfig( t *testing.T ) {
	conf := DefaultConfig()
	if conf.StegConfig.MaxPlanes != 8 {
		t.Errorf("Default configuration must use all 8 bit planes")
	}
}
