package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d credential database DSN (postgres:// URI or SQLite file path)
//	-dataset chemical dataset CSV path
//	-query-log query log CSV path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "12h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-admin-password initial admin password
//	-contact-email escalation contact address
//	-cookie-name session cookie name
//	-cookie-expiry-days session cookie lifetime in days
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var datasetPath string
	var queryLogPath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var adminPassword string
	var contactEmail string
	var cookieName string
	var cookieExpiryDays int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Credential database DSN")
	flag.StringVar(&datasetPath, "dataset", "", "Chemical dataset CSV path")
	flag.StringVar(&queryLogPath, "query-log", "", "Query log CSV path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&adminPassword, "admin-password", "", "Initial admin password")
	flag.StringVar(&contactEmail, "contact-email", "", "Escalation contact address")
	flag.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	flag.IntVar(&cookieExpiryDays, "cookie-expiry-days", 0, "Session cookie lifetime in days")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			TokenDuration:        tokenDuration,
			AdminInitialPassword: adminPassword,
			ContactEmail:         contactEmail,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Dataset: Dataset{
				Path: datasetPath,
			},
			QueryLog: QueryLog{
				Path: queryLogPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			CookieName: cookieName,
			ExpiryDays: cookieExpiryDays,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// step falls through to lower-priority sources.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
