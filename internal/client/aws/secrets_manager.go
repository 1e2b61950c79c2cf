package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
)

// ErrSecretNotFound is returned when neither the secret nor the fallback
// yields a value
var ErrSecretNotFound = errors.New("secret not found")

// SecretsAPI is the part of the Secrets Manager SDK client used here
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc    SecretsAPI
	logger *zap.Logger
}

// NewSecretsManagerClient creates a client from the default AWS configuration
// chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing SDK client
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{
		svc:    svc,
		logger: logger.Log,
	}
}

// GetSecretString fetches secretID (an ARN or name) from Secrets Manager. When
// secretID is empty or the lookup fails, fallback is returned if set.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretID string, fallback string) (string, error) {
	if secretID != "" {
		c.logger.Debug("Attempting to fetch secret from Secrets Manager", zap.String("secret_id", secretID))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretID),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			c.logger.Info("Successfully fetched secret from Secrets Manager", zap.String("secret_id", secretID))
			return *result.SecretString, nil
		}

		c.logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to configured value",
			zap.String("secret_id", secretID),
			zap.Bool("has_fallback", fallback != ""),
			zap.Error(err),
		)
	}

	if fallback != "" {
		return fallback, nil
	}

	if secretID == "" {
		return "", fmt.Errorf("%w: no secret id or fallback configured", ErrSecretNotFound)
	}
	return "", fmt.Errorf("%w: %s", ErrSecretNotFound, secretID)
}

// GetSecretField fetches a JSON secret and returns one field from it. Plain
// string secrets are returned unchanged.
func (c *SecretsManagerClient) GetSecretField(ctx context.Context, secretID, field, fallback string) (string, error) {
	raw, err := c.GetSecretString(ctx, secretID, fallback)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return "", fmt.Errorf("failed to parse secret JSON: %w", err)
	}
	value, ok := fields[field]
	if !ok || value == "" {
		return "", fmt.Errorf("%w: field %q missing from secret", ErrSecretNotFound, field)
	}
	return value, nil
}
