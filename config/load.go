package config

import (
	"flag"
	"github.com/fernandosanchezjr/gomseq/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"path"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file")
}

// Path returns the configured config file location, defaulting to
// config.yaml under the home folder.
func Path() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), "config.yaml")
}

// LoadConfig reads the config file; a missing file yields an empty
// config rather than an error.
func LoadConfig() (*Config, error) {
	c := &Config{}
	filePath := Path()
	data, err := ioutil.ReadFile(filePath)
	if os.IsNotExist(err) {
		log.Println("No config file at", filePath)
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
