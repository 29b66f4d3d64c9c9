package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv loads the dotenv file named by -env (default ".env") into the
// process environment and then copies the recognised variables into config.
// Variables already set in the environment win over the file; a missing
// file is not an error.
//
//	HOST, PORT             listen host and port
//	DATABASE_URL           database DSN
//	SECRET_KEY             JWT secret
//	ACCESS_TOKEN_TTL       token lifetime, "45m" or plain minutes
//	BCRYPT_COST            bcrypt work factor
//	CORS_ALLOWED_ORIGINS   comma-separated origins
//	LOG_LEVEL, LOG_FORMAT  logging
func parseEnv(config *Config) error {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("env file: %w", err)
	}

	host, hostSet := os.LookupEnv("HOST")
	port, portSet := os.LookupEnv("PORT")
	if hostSet || portSet {
		curHost, curPort, err := net.SplitHostPort(config.EndpointAddrHTTP)
		if err != nil {
			curHost, curPort = "", ""
		}
		if !hostSet {
			host = curHost
		}
		if !portSet {
			port = curPort
		}
		config.EndpointAddrHTTP = net.JoinHostPort(host, port)
	}

	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}

	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		d, err := parseMinutesOrDuration(v)
		if err != nil {
			return fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
		}
		config.AccessTokenValidityDuration = d
	}

	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		cost, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		config.BcryptCost = cost
	}

	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		config.LogFormat = v
	}

	return nil
}

func parseMinutesOrDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Minute, nil
	}
	return time.ParseDuration(s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
