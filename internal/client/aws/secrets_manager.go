package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SecretsManagerClient{
		svc: secretsmanager.NewFromConfig(cfg),
		cfg: cfg,
	}, nil
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN
// specified by an environment variable. If the ARN environment variable is not
// set or fetching fails, it falls back to reading the secret directly from
// another environment variable. Secrets stored as a single-key JSON object are
// unwrapped to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			fetchedSecretString := *result.SecretString

			var secretJSON map[string]string
			if jsonErr := json.Unmarshal([]byte(fetchedSecretString), &secretJSON); jsonErr == nil && len(secretJSON) == 1 {
				for _, value := range secretJSON {
					return value, nil
				}
			}

			return fetchedSecretString, nil
		}

		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	secretValue := os.Getenv(fallbackEnvVar)
	if secretValue != "" {
		return secretValue, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}
