package config

import (
	"os"
	"fmt"
	"gopkg.in/yaml.v3"

	"github.com/jasonkimprojects/easylsb/util"
)

/*
 * Configuration for steganography: how many bit planes per channel the
 * codec may occupy. Fewer planes means less capacity but less visible
 * distortion, 8 uses every bit of every channel.
 */
type SteganoConfig struct {
	MaxPlanes	uint			`yaml:"max_planes"`
}

/*
 * Full configuration of the tool, stored as plain YAML.
 */
type FullConfig struct {
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			MaxPlanes: 8,
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning,
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	if conf.StegConfig.MaxPlanes < 1 || conf.StegConfig.MaxPlanes > 8 {
		return nil, fmt.Errorf("Invalid max_planes value: %d (must be 1..8)", conf.StegConfig.MaxPlanes)
	}
	return &conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return err
	}
	return nil
}
