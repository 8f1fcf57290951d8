package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/vk/tripplanner/internal/app"
	"github.com/vk/tripplanner/internal/config"
	"github.com/vk/tripplanner/internal/summary"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvLogLevel  = "TRIPPLANNER_LOG_LEVEL"
	EnvLogFormat = "TRIPPLANNER_LOG_FORMAT"
	EnvOutput    = "TRIPPLANNER_OUTPUT"
	EnvPlan      = "TRIPPLANNER_PLAN"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// LookupEnv matches os.LookupEnv; tests pass a map-backed version.
type LookupEnv func(key string) (string, bool)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Each setting is taken from the first source that provides it: an explicit
// flag, the process environment, the -env-file, the -config file, and finally
// the flag default.
func Parse(args []string, output io.Writer, lookupEnv LookupEnv) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tripplanner", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
TripPlanner - An interactive trip planning form.

Usage:
  tripplanner [options]

Answers are read line by line from standard input; the summary is printed
to standard output once every question has been answered.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	envFileFlag := flagSet.String("env-file", "", "Path to an optional dotenv file with TRIPPLANNER_* settings.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", string(summary.FormatText), "Summary format. Options: 'text', 'json' or 'hcl'.")
	planFlag := flagSet.Bool("plan", false, "Append a budget breakdown, daily itinerary and travel tips to the text summary.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var dotenv map[string]string
	if *envFileFlag != "" {
		var err error
		dotenv, err = godotenv.Read(*envFileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("failed to read env file %s: %v", *envFileFlag, err)}
		}
		slog.Debug("Env file read.", "path", *envFileFlag, "keys", len(dotenv))
	}

	settings := &config.Settings{}
	if *configFlag != "" {
		var err error
		settings, err = config.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: err.Error()}
		}
	}

	resolve := func(name, flagVal, envKey, fileVal string) string {
		if explicit[name] {
			return flagVal
		}
		if lookupEnv != nil {
			if v, ok := lookupEnv(envKey); ok && v != "" {
				return v
			}
		}
		if v := dotenv[envKey]; v != "" {
			return v
		}
		if fileVal != "" {
			return fileVal
		}
		return flagVal
	}

	var filePlan string
	if settings.Plan != nil {
		filePlan = strconv.FormatBool(*settings.Plan)
	}
	planStr := resolve("plan", strconv.FormatBool(*planFlag), EnvPlan, filePlan)
	plan, err := strconv.ParseBool(planStr)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid plan value %q: must be true or false", planStr)}
	}

	cfg, err := app.NewConfig(app.Config{
		SettingsPath: *configFlag,
		EnvFile:      *envFileFlag,
		LogLevel:     resolve("log-level", *logLevelFlag, EnvLogLevel, settings.LogLevel),
		LogFormat:    resolve("log-format", *logFormatFlag, EnvLogFormat, settings.LogFormat),
		Output:       summary.Format(resolve("output", *outputFlag, EnvOutput, settings.Output)),
		Plan:         plan,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
