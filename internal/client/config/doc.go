// Package config loads runtime configuration for the minired client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv); a .env file in the working
//     directory is loaded first when present.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   backend base URL (e.g. http://localhost:5000/api)
//	-t int      per-request timeout (seconds)
//	-d string   directory for the token database, history and log file
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	API_URL                       backend base URL
//	MINIRED_REQUEST_TIMEOUT       per-request timeout, Go duration ("10s")
//	MINIRED_DATA_DIR              local state directory
//	MINIRED_LOG_LEVEL             log level
//	MINIRED_FORCE_LOGOUT_ON_401   "true"/"false"
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:5000/api",
//	  "request_timeout": "10s",
//	  "data_dir": "~/.minired",
//	  "log_level": "info",
//	  "force_logout_on_401": true
//	}
package config
