// SPDX-License-Identifier: MIT
// Package config: enumerations with YAML text forms.

package config

import (
	"log/slog"
	"strings"
)

// ModelKind names a recognizer.
type ModelKind int

const (
	KindSCCAQR ModelKind = iota
	KindSCCACanoncorr
	KindECCA
	KindMSCCA
	KindOACCA
)

var kindNames = [...]string{
	KindSCCAQR:        "scca-qr",
	KindSCCACanoncorr: "scca-canoncorr",
	KindECCA:          "ecca",
	KindMSCCA:         "mscca",
	KindOACCA:         "oacca",
}

// String returns the YAML name of k.
func (k ModelKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// SetString parses a YAML name, case-insensitively.
func (k *ModelKind) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			*k = ModelKind(i)
			return nil
		}
	}

	return configErrorf(opKind, ErrUnknownModel)
}

// MarshalYAML implements a YAML Marshaler for ModelKind.
func (k ModelKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements a YAML Unmarshaler for ModelKind.
func (k *ModelKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return k.SetString(s)
}

// LogLevel wraps slog.Level with lower-case YAML names.
type LogLevel slog.Level

// Level returns the slog level.
func (l LogLevel) Level() slog.Level { return slog.Level(l) }

// String returns debug, info, warn or error.
func (l LogLevel) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// SetString accepts debug, info, warn and error.
func (l *LogLevel) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		*l = LogLevel(slog.LevelDebug)
	case "info":
		*l = LogLevel(slog.LevelInfo)
	case "warn", "warning":
		*l = LogLevel(slog.LevelWarn)
	case "error":
		*l = LogLevel(slog.LevelError)
	default:
		return configErrorf(opLevel, ErrLogLevel)
	}

	return nil
}

// MarshalYAML implements a YAML Marshaler for LogLevel.
func (l LogLevel) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// UnmarshalYAML implements a YAML Unmarshaler for LogLevel.
func (l *LogLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return l.SetString(s)
}
