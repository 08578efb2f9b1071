// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type config struct {
	Background    [3]float64
	Foreground    [3]float64
	LineWidth     int
	Backdrop      string
	RememberBrush bool
}

const (
	configFile = "config.toml"
	envFile    = ".env"

	backdropSolid  = "solid"
	backdropScreen = "screen"
)

func defaultConfig() config {
	return config{
		Background:    [3]float64{0.1, 0.1, 0.1},
		Foreground:    [3]float64{1.0, 0.0, 0.0},
		LineWidth:     5,
		Backdrop:      backdropSolid,
		RememberBrush: true,
	}
}

func (c *config) foreground() rgb {
	return rgb{c.Foreground[0], c.Foreground[1], c.Foreground[2]}
}

func (c *config) background() rgb {
	return rgb{c.Background[0], c.Background[1], c.Background[2]}
}

func (c *config) rememberBrush(d *doodle) {
	c.Foreground = [3]float64{d.foreground.R, d.foreground.G, d.foreground.B}
	c.LineWidth = d.lineWidth
}

func initializeConfigIfNot() {
	log.Println("Checking if config needs to be initialized")

	conf := defaultConfig()

	configdir := configDir()
	ok, err := exists(configdir)
	if err != nil {
		log.Fatalf("Couldn't check if config directory exists: %v\n", err)
	}
	if !ok {
		err = os.MkdirAll(configdir, 0700)
		if err != nil {
			log.Fatalf("Couldn't create config directory: %v\n", err)
		}
	}
	tomlfile := filepath.Join(configdir, configFile)
	ok, err = exists(tomlfile)
	if err != nil {
		log.Fatalf("Couldn't check if config file exists: %v\n", err)
	}
	if !ok {
		log.Println("Initializing config")
		writeConfig(&conf)
	}
}

func readConfig() *config {
	f := filepath.Join(configDir(), configFile)
	config := defaultConfig()
	if _, err := toml.DecodeFile(f, &config); err != nil {
		log.Fatalf("Couldn't read config file: %v\n", err)
	}
	applyEnvOverrides(&config, filepath.Join(configDir(), envFile))
	config.Backdrop = normalizeBackdrop(config.Backdrop)

	return &config
}

func writeConfig(conf *config) {
	f := filepath.Join(configDir(), configFile)
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		log.Fatalf("Couldn't write config file: %v\n", err)
	}
	if err := os.WriteFile(f, buffer.Bytes(), 0644); err != nil {
		log.Printf("Couldn't save config file: %v\n", err)
	}
}

// applyEnvOverrides lets SCREENDOODLE_* variables, either exported or set
// in the .env next to the config file, win over the config file.
func applyEnvOverrides(conf *config, envPath string) {
	if ok, _ := exists(envPath); ok {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Couldn't load %s: %v\n", envPath, err)
		}
	}

	if v := os.Getenv("SCREENDOODLE_LINE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			conf.LineWidth = n
		} else {
			log.Printf("Ignoring invalid SCREENDOODLE_LINE_WIDTH '%s'\n", v)
		}
	}
	if v := os.Getenv("SCREENDOODLE_BACKDROP"); v != "" {
		conf.Backdrop = v
	}
}

func normalizeBackdrop(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case backdropScreen, "snapshot":
		return backdropScreen
	default:
		return backdropSolid
	}
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "screendoodle")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			log.Printf("Resolved $%s to '%s'\n", xdg, dir)
			return dir
		}

	}

	log.Printf("Couldn't resolve $%s falling back to '%s'\n", xdg, fallback)
	return fallback
}
