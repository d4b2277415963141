//go:build js

package main

// The browser has no working directory to read a config file from.
const defaultConfigPath = ""
