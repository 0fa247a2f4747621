// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p listen port (used when -a is not set)
//	-d database DSN
//	-c/-config json file path with configs
//	-cookie-secret capability cookie signing secret
//	-session-secret session cookie signing secret
//	-session-max-age session lifetime (e.g., "1h")
//	-cookie-max-age capability cookie lifetime (e.g., "60s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cleanup-interval expired session sweep period
//	-log-level zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var databaseDSN string
	var jsonConfigPath string
	var cookieSecret, sessionSecret string
	var sessionMaxAge, cookieMaxAge time.Duration
	var requestTimeout, cleanupInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet("session-auth", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Listen port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cookieSecret, "cookie-secret", "", "Capability cookie signing secret")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	fs.DurationVar(&sessionMaxAge, "session-max-age", 0, "Session lifetime (e.g., 1h)")
	fs.DurationVar(&cookieMaxAge, "cookie-max-age", 0, "Capability cookie lifetime (e.g., 60s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired session sweep period")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			CookieSecret:  cookieSecret,
			SessionSecret: sessionSecret,
			SessionMaxAge: sessionMaxAge,
			CookieMaxAge:  cookieMaxAge,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: cleanupInterval,
		},
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
