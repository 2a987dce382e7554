//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	SubscriptionID string
	ResourceGroup  string
	AccountName    string
	TenantID       string
	ClientID       string
	ClientSecret   string
	AccessToken    string
	AmsctlPath     string
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		SubscriptionID: os.Getenv("AMS_SUBSCRIPTION_ID"),
		ResourceGroup:  os.Getenv("AMS_RESOURCE_GROUP"),
		AccountName:    os.Getenv("AMS_ACCOUNT_NAME"),
		TenantID:       os.Getenv("AMS_TENANT_ID"),
		ClientID:       os.Getenv("AMS_CLIENT_ID"),
		ClientSecret:   os.Getenv("AMS_CLIENT_SECRET"),
		AccessToken:    os.Getenv("AMS_ACCESS_TOKEN"),
		AmsctlPath:     getAmsctlPath(),
		Verbose:        os.Getenv("AMS_VERBOSE") == "true",
	}
}

func getAmsctlPath() string {
	if path := os.Getenv("AMSCTL_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../amsctl", "./amsctl", "../amsctl"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "amsctl"
}

// SkipIfMissingConfig skips the test unless an account and credentials are configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.SubscriptionID == "" || config.ResourceGroup == "" || config.AccountName == "" {
		t.Skip("AMS_SUBSCRIPTION_ID, AMS_RESOURCE_GROUP or AMS_ACCOUNT_NAME not set, skipping integration test")
	}

	if config.AccessToken == "" && config.ClientSecret == "" {
		t.Skip("neither AMS_ACCESS_TOKEN nor AMS_CLIENT_SECRET set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the amsctl binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.AmsctlPath); err != nil {
		t.Skipf("amsctl binary not found at %s, skipping integration test", config.AmsctlPath)
	}
}

// NewClient creates a client for the configured account
func (config *TestConfig) NewClient(t *testing.T) *mediaclient.Client {
	t.Helper()

	client, err := mediaclient.New(context.Background(), &media.Config{
		SubscriptionID: config.SubscriptionID,
		AccessToken:    config.AccessToken,
		TenantID:       config.TenantID,
		ClientID:       config.ClientID,
		ClientSecret:   config.ClientSecret,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client
}

// CommandRunner runs amsctl against the configured account
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes amsctl with the account scope taken from the environment
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes amsctl with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.AmsctlPath, args...) //nolint:gosec
	cmd.Env = append(os.Environ(),
		"AMS_ACCOUNT_NAME="+runner.config.AccountName,
		"AMS_RESOURCE_GROUP="+runner.config.ResourceGroup,
	)

	var outBuf, errBuf bytes.Buffer

	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	cmd.Stdin = strings.NewReader(input)

	err = cmd.Run()

	if runner.config.Verbose {
		runner.t.Logf("amsctl %s\nStdout: %s\nStderr: %s", strings.Join(args, " "), outBuf.String(), errBuf.String())
	}

	return outBuf.String(), errBuf.String(), err
}

// CleanupResource deletes a test resource, logging failures
func (runner *CommandRunner) CleanupResource(resourceType, name string) {
	var args []string

	switch resourceType {
	case "asset":
		args = []string{"assets", "delete", name, "--force"}
	case "streaming-policy":
		args = []string{"streaming-policies", "delete", name, "--force"}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, name, stdout, stderr)
	}
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// WaitForCondition waits for a condition to be met with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(2 * time.Second) //nolint:mnd
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	require.True(t, json.Valid([]byte(strings.TrimSpace(output))), "output is not JSON: %s", output)
}
