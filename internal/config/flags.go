package config

import (
	"github.com/urfave/cli/v3"
)

// Flag names shared by the root command and [fromFlags].
const (
	FlagConfig         = "config"
	FlagEnv            = "env"
	FlagActor          = "actor"
	FlagHashKey        = "hash-key"
	FlagStrict         = "strict"
	FlagConcurrency    = "concurrency"
	FlagAddress        = "address"
	FlagGraphQLPath    = "graphql-path"
	FlagRequestTimeout = "request-timeout"
	FlagToken          = "token"
	FlagPrivateKey     = "private-key"
	FlagPublicKey      = "public-key"
	FlagKeyFile        = "key-file"
	FlagPassphrase     = "passphrase"
	FlagKMSURL         = "kms-url"
	FlagDSN            = "dsn"
)

// Flags returns the global configuration flags of the root command.
//
// Flags:
//
//	-c/--config       json file path with configs
//	--env             deployment environment ("production" hides debug logs)
//	--actor           key store actor id
//	--hash-key        request integrity hash key
//	--strict          fail writes instead of sending plaintext PII
//	--concurrency     parallel field workers per record
//	-a/--address      API address [scheme://]host:port
//	--graphql-path    GraphQL endpoint path
//	--request-timeout request timeout (e.g., "15s", "1m")
//	--token           bearer token
//	--private-key     hex X25519 private key
//	--public-key      hex X25519 public key
//	--key-file        JSON key file path
//	--passphrase      key store passphrase
//	--kms-url         key store KMS keeper URL
//	-d/--dsn          key store DSN
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagConfig, Aliases: []string{"c"}, Usage: "JSON config file path"},
		&cli.StringFlag{Name: FlagEnv, Usage: "Deployment environment"},
		&cli.StringFlag{Name: FlagActor, Usage: "Key store actor id"},
		&cli.StringFlag{Name: FlagHashKey, Usage: "Request integrity hash key"},
		&cli.BoolFlag{Name: FlagStrict, Usage: "Abort writes that would send plaintext PII"},
		&cli.IntFlag{Name: FlagConcurrency, Usage: "Parallel field workers per record"},
		&cli.StringFlag{Name: FlagAddress, Aliases: []string{"a"}, Usage: "API address [scheme://]host:port"},
		&cli.StringFlag{Name: FlagGraphQLPath, Usage: "GraphQL endpoint path"},
		&cli.DurationFlag{Name: FlagRequestTimeout, Usage: "Request timeout (e.g., 15s, 1m)"},
		&cli.StringFlag{Name: FlagToken, Usage: "Bearer token"},
		&cli.StringFlag{Name: FlagPrivateKey, Usage: "Hex encoded X25519 private key"},
		&cli.StringFlag{Name: FlagPublicKey, Usage: "Hex encoded X25519 public key"},
		&cli.StringFlag{Name: FlagKeyFile, Usage: "JSON key file path"},
		&cli.StringFlag{Name: FlagPassphrase, Usage: "Key store passphrase"},
		&cli.StringFlag{Name: FlagKMSURL, Usage: "Key store KMS keeper URL"},
		&cli.StringFlag{Name: FlagDSN, Aliases: []string{"d"}, Usage: "Key store DSN"},
	}
}

// fromFlags reads the flags defined by [Flags] from cmd. Unset flags keep
// their zero value so that earlier sources win for them.
func fromFlags(cmd *cli.Command) *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:              cmd.String(FlagEnv),
			Actor:            cmd.String(FlagActor),
			HashKey:          cmd.String(FlagHashKey),
			StrictEncryption: cmd.Bool(FlagStrict),
			Concurrency:      int(cmd.Int(FlagConcurrency)),
		},
		Adapter: Adapter{
			HTTPAddress:    cmd.String(FlagAddress),
			GraphQLPath:    cmd.String(FlagGraphQLPath),
			RequestTimeout: cmd.Duration(FlagRequestTimeout),
			Token:          cmd.String(FlagToken),
		},
		Keys: Keys{
			PrivateKey: cmd.String(FlagPrivateKey),
			PublicKey:  cmd.String(FlagPublicKey),
			File:       cmd.String(FlagKeyFile),
			Passphrase: cmd.String(FlagPassphrase),
			KMSURL:     cmd.String(FlagKMSURL),
		},
		Storage: Storage{
			DB: DB{DSN: cmd.String(FlagDSN)},
		},
		JSONFilePath: cmd.String(FlagConfig),
	}
}
