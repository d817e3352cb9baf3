// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (a .env file, when present, is loaded into the
//     process environment first and never overrides variables already set)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server binary and
// [LoadConfig] for tools that own their command line, such as phictl.
package config
