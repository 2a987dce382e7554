package constants

import "errors"

// Configuration errors.
var (
	ErrNoSubscription     = errors.New("no subscription configured, use 'amsctl config set subscription_id <id>'")
	ErrNoResourceGroup    = errors.New("no resource group given, use --resource-group or 'amsctl config set resource_group <name>'")
	ErrNoAccount          = errors.New("no media account given, use --account or 'amsctl config set account_name <name>'")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrSecretNotProvided  = errors.New("secret not provided and stdin is not a terminal")
	ErrConfigDirResolving = errors.New("could not resolve configuration directory")
	ErrMissingConfigValue = errors.New("missing configuration value")
	ErrInvalidRateLimit   = errors.New("rate_limit must be a non-negative number")
	ErrTenantRequired     = errors.New("tenant_id is required with client credentials")
	ErrTokenSubscription  = errors.New("token subscription does not match configured subscription")
)

// Operation errors.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrNoContainerSas   = errors.New("service returned no container SAS URL")
	ErrNoFilesToUpload  = errors.New("no files to upload")
	ErrUnknownProtocol  = errors.New("unknown streaming protocol")
	ErrInvalidDuration  = errors.New("invalid duration")
)
