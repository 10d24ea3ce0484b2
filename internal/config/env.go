package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvLanguage       = "SOLARSYSTEM_LANGUAGE"
	EnvErrorDialog    = "SOLARSYSTEM_ERROR_DIALOG"
	EnvResizable      = "SOLARSYSTEM_RESIZABLE"
	EnvClearOnSuccess = "SOLARSYSTEM_CLEAR_ON_SUCCESS"
	EnvEcho           = "SOLARSYSTEM_ECHO"
)

// Env holds overrides read from the process environment. Nil pointers and
// empty strings mean "not set".
type Env struct {
	Language       string
	ErrorDialog    string
	Resizable      *bool
	ClearOnSuccess *bool

	// Echo registers a logging controller so the form does something
	// visible without an external simulation.
	Echo bool
}

// LoadEnv reads the given .env files (".env" when none are given) into the
// process environment and parses the overrides. Missing files are not an
// error.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("No .env file loaded, using system environment variables")
	}
	return parseEnv(os.Getenv)
}

func parseEnv(getenv func(string) string) (Env, error) {
	env := Env{
		Language:    strings.TrimSpace(getenv(EnvLanguage)),
		ErrorDialog: strings.ToLower(strings.TrimSpace(getenv(EnvErrorDialog))),
	}

	if env.ErrorDialog != "" && !ErrorDialogStyle(env.ErrorDialog).valid() {
		return Env{}, fmt.Errorf("%s: unknown dialog style %q", EnvErrorDialog, env.ErrorDialog)
	}

	var err error
	if env.Resizable, err = optionalBool(getenv, EnvResizable); err != nil {
		return Env{}, err
	}
	if env.ClearOnSuccess, err = optionalBool(getenv, EnvClearOnSuccess); err != nil {
		return Env{}, err
	}

	echo, err := optionalBool(getenv, EnvEcho)
	if err != nil {
		return Env{}, err
	}
	env.Echo = echo != nil && *echo

	return env, nil
}

func optionalBool(getenv func(string) string, key string) (*bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &value, nil
}
