package main

import "fmt"

const (
	memoryStore = "memory"
	badgerStore = "badger"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	UsageStore     string `env:"USAGE_STORE,default=memory"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/usage"`
	RecentLimit    int    `env:"RECENT_LIMIT,default=100"`
	MaxInputBytes  int64  `env:"MAX_INPUT_BYTES,default=1048576"`
	Detector       string `env:"INTENT_DETECTOR,default=default"`
	Colours        bool   `env:"COLOURS,default=true"`
}

func (c Config) check() error {
	if c.UsageStore != memoryStore && c.UsageStore != badgerStore {
		return fmt.Errorf("USAGE_STORE must be %q or %q, got %q", memoryStore, badgerStore, c.UsageStore)
	}
	if c.Detector != "default" && c.Detector != "keyword" {
		return fmt.Errorf("INTENT_DETECTOR must be \"default\" or \"keyword\", got %q", c.Detector)
	}
	if c.RecentLimit < 0 || c.MaxInputBytes <= 0 {
		return fmt.Errorf("RECENT_LIMIT and MAX_INPUT_BYTES must be positive")
	}
	return nil
}
