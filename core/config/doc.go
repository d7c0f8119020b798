// Package config provides configuration management for the image verifier.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: base URL of the server under test and the image path
//   - Client: request timeout and user agent
//   - Verify: local fixture path and strict mode
//   - Log: logging level and format
//
// Every key has a default declared with the `default` struct tag, so the verifier runs
// against http://127.0.0.1:8081 without any configuration. Nested keys map to
// environment variables by replacing dots with underscores (server.base_url ->
// SERVER_BASE_URL).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.BaseURL)
package config
