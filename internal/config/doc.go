// Package config provides configuration management for feeboard.
//
// Configuration is loaded from several YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Defaults (struct tags on the config types)
//  2. User configuration (~/.config/feeboard/config.yaml)
//  3. Project configuration (./.feeboard/config.yaml)
//  4. An explicit file passed with --config
//
// Command-line flags such as --base-url are applied by the commands on top
// of the loaded configuration.
//
// # Configuration Structure
//
//	backend:
//	  baseURL: "http://127.0.0.1:8000"
//	  requestTimeout: 0s        # zero disables the per-request timeout
//	live:
//	  pollInterval: 3s
//	dashboard:
//	  defaultPriority: fast     # fast, medium or slow
//	  defaultExplain: ""        # "", none or llm
//	  minerCount: "3"
//	  minerFee: ""
//	  targetBlocks: "1"
//	logging:
//	  level: info
//	metrics:
//	  listenAddr: ""            # e.g. ":9100"; empty disables the endpoint
//
// The merged result is validated before use; an invalid value fails the
// load with an error naming the offending field.
package config
