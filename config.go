package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	return config
}

type Config struct {
	Map struct {
		// JSON map document, the native format
		Source string `yaml:"source"`
		// optional OSM indoor extract, used when source is empty
		OSM string `yaml:"osm"`
	} `yaml:"map"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}
