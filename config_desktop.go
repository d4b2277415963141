//go:build !js

package main

import "github.com/iburimskiy/svg-pan/internal/config"

const defaultConfigPath = config.DefaultFileName
