// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the standard locations.
const FileName = "rot.yaml"

var (
	// ErrNoConfig is returned by Load when no config file exists anywhere.
	ErrNoConfig = errors.New("no config file found in standard locations")
	// ErrMalformed is returned by Load when the config file is not valid YAML.
	ErrMalformed = errors.New("malformed config file")
	// ErrKeyNotFound is returned by the getters when nothing is at the key.
	ErrKeyNotFound = errors.New("no value at path")
)

type Type struct {
	Source string
	Data   map[string]interface{}
}

var Config Type

// Load reads the config file and makes it the package-wide Config. An explicit
// path wins over ROT_CFG and the standard locations.
func Load(cfgFilePath ...string) (Type, error) {
	var (
		path string
		err  error
	)
	if len(cfgFilePath) > 0 && cfgFilePath[0] != "" {
		path = cfgFilePath[0]
	} else if path, err = getConfigPath(); err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("%w %s: %v", ErrMalformed, path, err)
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// get traverses the map using a dotted key path
func (cfg *Type) get(kspec string) (any, error) {
	if len(cfg.Data) == 0 && cfg.Source == "" {
		if loaded, err := Load(); err == nil {
			*cfg = loaded
		}
	}

	var current interface{} = cfg.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w '%s'", ErrKeyNotFound, kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("%w '%s'", ErrKeyNotFound, kspec)
		}
	}

	return current, nil
}

func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

// GetStringSlice returns a list value. A scalar string is treated as a list
// of one.
func GetStringSlice(key string) ([]string, error) {
	val, err := Config.get(key)
	if err != nil {
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %v of '%s' is not a string", e, key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("value is not a list of strings")
	}
}

func getConfigPath() (string, error) {
	if p := os.Getenv("ROT_CFG"); p != "" {
		fileInfo, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("ROT_CFG points to a directory: %s", p)
		}
		log.Debugf("using config file: %s", p)
		return p, nil
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", ErrNoConfig
}
