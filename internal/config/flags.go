package config

import (
	"flag"
	"time"
)

// parseServerFlags reads server configuration from command-line arguments.
//
// Flags:
//
//	-a               listen address in [host]:[port] format
//	-d               database DSN
//	-hash-key        server HMAC key for auth verifiers
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token lifetime (e.g. "1h", "30m")
//	-c / -config     JSON config file path
func parseServerFlags(args []string) (*ServerConfig, error) {
	fs := flag.NewFlagSet("vault-server", flag.ContinueOnError)

	var (
		address       string
		dsn           string
		hashKey       string
		tokenSignKey  string
		tokenIssuer   string
		tokenDuration time.Duration
		jsonPath      string
	)

	fs.StringVar(&address, "a", "", "Listen address host:port")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&hashKey, "hash-key", "", "Auth verifier HMAC key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 1h, 30m)")
	fs.StringVar(&jsonPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &ServerConfig{
		App: AppConfig{
			HashKey:       hashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage:      StorageConfig{DSN: dsn},
		Server:       HTTPServerConfig{Address: address},
		JSONFilePath: jsonPath,
	}, nil
}

// parseClientFlags reads client configuration from command-line arguments.
//
// Flags:
//
//	-s               vault server base URL
//	-t               request timeout (e.g. "15s")
//	-local           local SQLite cache path
//	-log             client log file path
//	-c / -config     JSON config file path
//
// Parsing stops at the first non-flag argument; the rest is returned as the
// command and its arguments.
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("vault-client", flag.ContinueOnError)

	var (
		baseURL  string
		timeout  time.Duration
		local    string
		logPath  string
		jsonPath string
	)

	fs.StringVar(&baseURL, "s", "", "Vault server base URL")
	fs.DurationVar(&timeout, "t", 0, "Request timeout (e.g. 15s)")
	fs.StringVar(&local, "local", "", "Local cache path")
	fs.StringVar(&logPath, "log", "", "Client log file path")
	fs.StringVar(&jsonPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &ClientConfig{
		Adapter:      AdapterConfig{BaseURL: baseURL, RequestTimeout: timeout},
		Storage:      ClientStorageConfig{Path: local},
		LogPath:      logPath,
		JSONFilePath: jsonPath,
	}, fs.Args(), nil
}
