package main

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
)

var settingsPath = filepath.Join(configPath, "settings.csv")

type settings struct {
	BeatsPerMinute    int
	DefaultTonic      float64
	ExportBaseNote    int
	ExportHighNote    int
	ExportLowNote     int
	MaxDenominator    int
	MidiOutPortNumber int
	SnapCents         float64
}

// return settings with every field at its default
func defaultSettings() *settings {
	return &settings{
		BeatsPerMinute:    120,
		DefaultTonic:      defaultTonic,
		ExportBaseNote:    60,
		ExportHighNote:    127,
		ExportLowNote:     0,
		MaxDenominator:    16,
		MidiOutPortNumber: -1,
		SnapCents:         10,
	}
}

// load settings from the config file, falling back to defaults
func loadSettings(warn func(string)) *settings {
	s := defaultSettings()
	if records, err := readCSV(settingsPath); err == nil {
		s.applyRecords(records, warn)
	}
	return s
}

// apply CSV records
func (s *settings) applyRecords(records [][]string, warn func(string)) {
	v := reflect.ValueOf(s).Elem()
	for _, rec := range records {
		success := false
		if len(rec) == 2 {
			if field := v.FieldByName(rec[0]); field.IsValid() {
				switch field.Kind() {
				case reflect.Int:
					if i, err := strconv.Atoi(rec[1]); err == nil {
						field.SetInt(int64(i))
						success = true
					}
				case reflect.Float64:
					if f, err := strconv.ParseFloat(rec[1], 64); err == nil {
						field.SetFloat(f)
						success = true
					}
				case reflect.String:
					field.SetString(rec[1])
					success = true
				}
			}
		}
		if !success {
			warn(fmt.Sprintf("bad settings record: %v", rec))
		}
	}
}
