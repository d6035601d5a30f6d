package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alimenta/alimenta/internal/auth"
)

type output struct {
	Secret  string `json:"secret"`
	Bytes   int    `json:"bytes"`
	EnvFile string `json:"env_file,omitempty"`
	Written bool   `json:"written"`
}

func main() {
	var (
		envFile = flag.String("env-file", ".env", "Env file to store the secret in; empty prints without writing")
		size    = flag.Int("bytes", auth.MinSecretLen, "Secret size in bytes before hex encoding")
		force   = flag.Bool("force", false, "Replace an existing JWT_SECRET entry")
		format  = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	secret, err := auth.GenerateSecret(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate secret:", err)
		os.Exit(1)
	}

	out := output{
		Secret:  secret,
		Bytes:   *size,
		EnvFile: *envFile,
	}

	if *envFile != "" {
		written, err := storeSecret(*envFile, secret, *force)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		out.Written = written
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.Secret)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

// storeSecret writes JWT_SECRET=<secret> into the env file, creating it
// when missing. An existing entry is only replaced with force, and the
// replacement rewrites the whole file so comments do not survive it.
func storeSecret(path, secret string, force bool) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		line := fmt.Sprintf("JWT_SECRET=%s\n", secret)
		if err := os.WriteFile(path, []byte(line), 0o600); err != nil {
			return false, fmt.Errorf("create %s: %w", path, err)
		}
		return true, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if existing, ok := vars["JWT_SECRET"]; ok && existing != "" {
		if !force {
			return false, fmt.Errorf("JWT_SECRET already set in %s; use -force to replace", path)
		}
		vars["JWT_SECRET"] = secret
		if err := godotenv.Write(vars, path); err != nil {
			return false, fmt.Errorf("rewrite %s: %w", path, err)
		}
		return true, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "JWT_SECRET=%s\n", secret); err != nil {
		return false, fmt.Errorf("append to %s: %w", path, err)
	}
	return true, nil
}
