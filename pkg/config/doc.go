// Package config provides configuration loading for accountd.
//
// Configuration structs carry cleanenv env tags so they can be populated
// with cleanenv.ReadEnv, and each also has a New*FromEnv constructor for
// callers that load configuration directly. Converters bridge to the
// types the underlying libraries expect (db-utils DbConfig, notification
// SMTPConfig).
package config
