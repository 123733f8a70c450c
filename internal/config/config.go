package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that back every option
const EnvPrefix = "MONGOSYNC"

// Mode selects the pipeline of a run
type Mode string

const (
	ModeImport Mode = "import"
	ModeExport Mode = "export"
)

// Option names, shared by flags, config files and environment variables
const (
	OptClientURI  = "clientURI"
	OptDatabase   = "database"
	OptImport     = "import"
	OptExport     = "export"
	OptExcludes   = "excludes"
	OptCollection = "collection"
	OptBaseDir    = "basedir"
	OptGCSBucket  = "gcsBucket"
	OptGCSPrefix  = "gcsPrefix"
	OptLogLevel   = "loglevel"
	OptLogFile    = "logfile"
	OptConfig     = "config"
)

// Config is the validated configuration of one run
type Config struct {
	ClientURI  string
	Database   string
	Mode       Mode
	Excludes   string
	Collection string
	BaseDir    string
	GCSBucket  string
	GCSPrefix  string
	LogLevel   string
	LogFile    string
}

// ConfigError is an invalid or missing option. It is fatal before any data operation.
type ConfigError struct {
	Option string
	Msg    string
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return e.Msg
	}
	return fmt.Sprintf("--%s: %s", e.Option, e.Msg)
}

// RegisterFlags defines every option on flags
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(OptClientURI, "", "MongoDB connection string (required)")
	flags.String(OptDatabase, "", "Database name, also the name of the snapshot directory (required)")
	flags.Bool(OptImport, false, "Import the snapshot directory into the database")
	flags.Bool(OptExport, false, "Export the database into the snapshot directory")
	flags.String(OptExcludes, "", "Comma separated collection names to skip (required, may be empty)")
	flags.String(OptCollection, "", "Export only this collection")
	flags.String(OptBaseDir, ".", "Directory that holds the snapshot directory")
	flags.String(OptGCSBucket, "", "Mirror the snapshot directory to this GCS bucket")
	flags.String(OptGCSPrefix, "", "Object prefix inside the GCS bucket")
	flags.String(OptLogLevel, "info", "Logging level (debug, info, warn, error)")
	flags.String(OptLogFile, "", "Also write logs to this file, rotated by size")
	flags.String(OptConfig, "", "Optional config file (json or yaml)")
}

// NewViper binds flags, MONGOSYNC_* environment variables and the optional config file
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	// MONGO_URI is accepted as a fallback for the connection string
	if err := v.BindEnv(OptClientURI, EnvPrefix+"_CLIENTURI", "MONGO_URI"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if path := v.GetString(OptConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigError{Option: OptConfig, Msg: fmt.Sprintf("failed to read %s: %v", path, err)}
		}
	}
	return v, nil
}

// Load reads the options from v and validates them
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		ClientURI:  v.GetString(OptClientURI),
		Database:   v.GetString(OptDatabase),
		Excludes:   v.GetString(OptExcludes),
		Collection: v.GetString(OptCollection),
		BaseDir:    v.GetString(OptBaseDir),
		GCSBucket:  v.GetString(OptGCSBucket),
		GCSPrefix:  v.GetString(OptGCSPrefix),
		LogLevel:   v.GetString(OptLogLevel),
		LogFile:    v.GetString(OptLogFile),
	}

	if !v.IsSet(OptExcludes) {
		return cfg, &ConfigError{Option: OptExcludes, Msg: "option is required (use an empty value to exclude nothing)"}
	}

	importMode, exportMode := v.GetBool(OptImport), v.GetBool(OptExport)
	switch {
	case importMode && exportMode:
		return cfg, &ConfigError{Msg: "--import and --export are mutually exclusive"}
	case importMode:
		cfg.Mode = ModeImport
	case exportMode:
		cfg.Mode = ModeExport
	}

	return cfg, cfg.Validate()
}

// Validate checks the required options of a run
func (c Config) Validate() error {
	if c.ClientURI == "" {
		return &ConfigError{Option: OptClientURI, Msg: "option is required"}
	}
	if c.Database == "" {
		return &ConfigError{Option: OptDatabase, Msg: "You must provide a database."}
	}
	if c.Mode != ModeImport && c.Mode != ModeExport {
		return &ConfigError{Msg: "Unsupported method. Use --import or --export."}
	}
	if c.BaseDir == "" {
		return &ConfigError{Option: OptBaseDir, Msg: "must not be empty"}
	}
	return nil
}
