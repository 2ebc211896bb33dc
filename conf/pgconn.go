package conf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// GetPgConnStrFromEnv returns DATABASE_URL when set. Otherwise the URL is
// composed from the POSTGRES_* variables; outside of localhost the password
// is read from AWS Secrets Manager if POSTGRES_PASSWORD_SECRET_NAME is set.
func GetPgConnStrFromEnv() (string, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL, nil
	}

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return "", fmt.Errorf("neither DATABASE_URL nor POSTGRES_HOST is set")
	}

	pw := os.Getenv("POSTGRES_PW")
	secretName := os.Getenv("POSTGRES_PASSWORD_SECRET_NAME")
	if host != "localhost" && secretName != "" {
		secretValue, err := getSecretFromAWS(secretName)
		if err != nil {
			return "", fmt.Errorf("failed to get postgres password from AWS: %w", err)
		}
		var secret struct {
			Password string `json:"password"`
		}
		if err := json.Unmarshal([]byte(secretValue), &secret); err != nil {
			return "", fmt.Errorf("failed to parse postgres password secret: %w", err)
		}
		pw = secret.Password
	}

	return composePgURL(
		host,
		getEnvOr("POSTGRES_PORT", "5432"),
		os.Getenv("POSTGRES_USER"),
		pw,
		os.Getenv("POSTGRES_DB"),
		getEnvOr("POSTGRES_SSLMODE", "disable"),
	), nil
}

func composePgURL(host, port, user, pw, db, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pw),
		Host:     host + ":" + port,
		Path:     "/" + db,
		RawQuery: url.Values{"sslmode": []string{sslmode}}.Encode(),
	}
	return u.String()
}

func getSecretFromAWS(secretName string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", err
	}
	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretName)
	}
	return *result.SecretString, nil
}
