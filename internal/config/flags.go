package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s server address the client connects to, [host]:[port]
//	-b storage backend (memory, sqlite, postgres, firestore)
//	-d database DSN
//	-sqlite sqlite database file
//	-snapshot in-memory store snapshot file
//	-firestore-project firestore project id
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-tz diary time zone
//	-lang message language
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var backend, databaseDSN, sqlitePath, snapshotPath, firestoreProject string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var timeZone, language string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&adapterAddress, "s", "Server address the client connects to, host:port")
	fs.StringVar(&backend, "b", "", "Storage backend: memory, sqlite, postgres, firestore")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sqlitePath, "sqlite", "", "SQLite database file")
	fs.StringVar(&snapshotPath, "snapshot", "", "In-memory store snapshot file")
	fs.StringVar(&firestoreProject, "firestore-project", "", "Firestore project id")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&timeZone, "tz", "", "Diary time zone (IANA name)")
	fs.StringVar(&language, "lang", "", "Message language: en, ru")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			TimeZone:      timeZone,
			Language:      language,
		},
		Storage: Storage{
			Backend:   backend,
			DB:        DB{DSN: databaseDSN},
			SQLite:    SQLite{Path: sqlitePath},
			Memory:    Memory{SnapshotPath: snapshotPath},
			Firestore: Firestore{ProjectID: firestoreProject},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
