// Package config loads the crikeyrc key-value configuration file: realname,
// nick, username, password, and server_addr.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/horgh/config"
	"github.com/pkg/errors"
)

// Data holds the options crikeyrc may set.
type Data struct {
	Realname   string
	Nick       string
	Username   string
	Password   string
	ServerAddr string
}

const defaultContents = "realname = Potato Johnson\nnick = spudly\nusername = pjohnson\nserver_addr = 127.0.0.1:6667\n"

// knownOptions are the recognized crikeyrc keys.
var knownOptions = map[string]bool{
	"realname":    true,
	"nick":        true,
	"username":    true,
	"password":    true,
	"server_addr": true,
}

// FindPath resolves the crikeyrc path: $XDG_CONFIG_HOME/crikeyrc if that
// environment variable is set, else $HOME/.config/crikeyrc, else
// ./crikeyrc. If the resolved file does not exist, it is created with
// default contents.
func FindPath() (string, error) {
	var dir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dir = xdg
	} else if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".config")
	} else {
		dir = "."
	}

	path := filepath.Join(dir, "crikeyrc")
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "config: stat")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrap(err, "config: create config dir")
		}
		if err := os.WriteFile(path, []byte(defaultContents), 0o600); err != nil {
			return "", errors.Wrap(err, "config: write default config")
		}
	}
	return path, nil
}

// Load reads and parses the crikeyrc file at path. Unrecognized options are
// reported to stderr and otherwise ignored.
func Load(path string) (Data, error) {
	values, err := config.ReadStringMap(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "config: read")
	}
	for key := range values {
		if !knownOptions[key] {
			fmt.Fprintf(os.Stderr, "config: invalid option %q\n", key)
		}
	}
	return Data{
		Realname:   values["realname"],
		Nick:       values["nick"],
		Username:   values["username"],
		Password:   values["password"],
		ServerAddr: values["server_addr"],
	}, nil
}
