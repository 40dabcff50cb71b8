// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

// Package config loads and validates configuration for the vault server and
// the CLI client. Values are gathered from environment variables, flags, and
// an optional JSON file, then merged with mergo in that order: an earlier
// source wins, later sources only fill zero-valued gaps.
package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
)

// GetServerConfig builds the server configuration from env, os.Args flags,
// and an optional JSON file, then validates the result.
func GetServerConfig() (*ServerConfig, error) {
	return buildServerConfig(os.Args[1:])
}

// GetClientConfig builds the client configuration the same way. It also
// returns the remaining non-flag arguments, i.e. the command to run and its
// own flags.
func GetClientConfig() (*ClientConfig, []string, error) {
	return buildClientConfig(os.Args[1:])
}

func buildServerConfig(args []string) (*ServerConfig, error) {
	sources := make([]*ServerConfig, 0, 3)

	envCfg := &ServerConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}
	sources = append(sources, envCfg)

	flagCfg, err := parseServerFlags(args)
	if err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	sources = append(sources, flagCfg)

	if path := jsonPath(envCfg.JSONFilePath, flagCfg.JSONFilePath); path != "" {
		jsonCfg, err := parseServerJSON(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, jsonCfg)
	}

	merged := &ServerConfig{}
	for _, src := range sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("merge configs: %w", err)
		}
	}

	return merged, merged.validate()
}

func buildClientConfig(args []string) (*ClientConfig, []string, error) {
	sources := make([]*ClientConfig, 0, 3)

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}
	sources = append(sources, envCfg)

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("parse flags: %w", err)
	}
	sources = append(sources, flagCfg)

	if path := jsonPath(envCfg.JSONFilePath, flagCfg.JSONFilePath); path != "" {
		jsonCfg, err := parseClientJSON(path)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, jsonCfg)
	}

	merged := &ClientConfig{}
	for _, src := range sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, nil, fmt.Errorf("merge configs: %w", err)
		}
	}

	return merged, rest, merged.validate()
}

// jsonPath picks the JSON config path, env taking precedence over flags.
func jsonPath(fromEnv, fromFlags string) string {
	if fromEnv != "" {
		return fromEnv
	}
	return fromFlags
}
