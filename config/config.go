// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
	validProviders = []string{"smtp", "resend"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("docstore.enabled", "docstore_enabled")
	v.BindEnv("docstore.addr", "docstore_addr")
	v.BindEnv("docstore.password", "docstore_password")
	v.BindEnv("docstore.db", "docstore_db")

	v.BindEnv("storage.mirror", "storage_mirror")
	v.BindEnv("storage.force_mirror", "storage_force_mirror")
	v.BindEnv("storage.mirror_budget", "storage_mirror_budget")
	v.BindEnv("storage.media", "storage_media")
	v.BindEnv("storage.upload_dir", "storage_upload_dir")

	v.BindEnv("aws.access_key", "aws_access_key")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.bucket", "aws_bucket")
	v.BindEnv("aws.public_url", "aws_public_url")

	v.BindEnv("directory.base_url", "directory_base_url")
	v.BindEnv("directory.access_token", "directory_access_token")
	v.BindEnv("directory.email_domain", "directory_email_domain")
	v.BindEnv("directory.timeout", "directory_timeout")

	v.BindEnv("mail.provider", "mail_provider")
	v.BindEnv("mail.from", "mail_from")
	v.BindEnv("mail.timeout", "mail_timeout")
	v.BindEnv("mail.smtp.host", "mail_smtp_host")
	v.BindEnv("mail.smtp.port", "mail_smtp_port")
	v.BindEnv("mail.smtp.password", "mail_smtp_password")
	v.BindEnv("mail.resend.api_key", "mail_resend_api_key")

	v.BindEnv("security.jwt_secret", "security_jwt_secret")
	v.BindEnv("admin.password", "admin_password")

	v.BindEnv("signup.pending_ttl", "signup_pending_ttl")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("docstore.enabled", false)
	v.SetDefault("docstore.addr", "localhost:6379")
	v.SetDefault("docstore.db", 0)

	v.SetDefault("storage.mirror", true)
	v.SetDefault("storage.force_mirror", false)
	v.SetDefault("storage.mirror_budget", 2*time.Second)
	v.SetDefault("storage.media", "local")
	v.SetDefault("storage.upload_dir", "uploads")

	v.SetDefault("upload.max_size", 10)

	v.SetDefault("directory.timeout", 10*time.Second)

	v.SetDefault("mail.provider", "smtp")
	v.SetDefault("mail.timeout", 10*time.Second)
	v.SetDefault("mail.smtp.port", 587)

	v.SetDefault("signup.pending_ttl", 15*time.Minute)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid db driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("db.dsn can't be empty")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if v.GetString("security.jwt_secret") == "" {
		return errors.New("security.jwt_secret is missing")
	}

	if v.GetString("admin.password") == "" {
		return errors.New("admin.password is missing")
	}

	// Mirroring needs a reachable document store. force_mirror is the
	// explicit knob for deployments that must always mirror, there is no
	// implicit environment-name branching.
	if v.GetBool("storage.force_mirror") && !v.GetBool("docstore.enabled") {
		return errors.New("storage.force_mirror requires docstore.enabled")
	}

	if v.GetBool("docstore.enabled") && v.GetString("docstore.addr") == "" {
		return errors.New("docstore.addr can't be empty")
	}

	switch v.GetString("storage.media") {
	case "s3":
		if v.GetString("aws.access_key") == "" {
			return errors.New("aws.access_key can't be empty")
		}
		if v.GetString("aws.secret_access_key") == "" {
			return errors.New("aws.secret_access_key can't be empty")
		}
		if v.GetString("aws.bucket") == "" {
			return errors.New("aws.bucket can't be empty")
		}
		if v.GetString("aws.public_url") == "" {
			return errors.New("aws.public_url can't be empty")
		}
	case "local":
	default:
		return errors.New("invalid media storage type provided")
	}

	if !slices.Contains(validProviders, v.GetString("mail.provider")) {
		return errors.New("invalid mail provider provided")
	}

	if v.GetString("mail.from") == "" {
		return errors.New("mail.from can't be empty")
	}

	if v.GetString("directory.base_url") == "" {
		return errors.New("directory.base_url can't be empty")
	}

	if v.GetString("directory.email_domain") == "" {
		return errors.New("directory.email_domain can't be empty")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
