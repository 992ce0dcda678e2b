package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func initSecretsConfig(ctx context.Context) (*secretsmanager.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregar config AWS: %w", err)
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// retrieveCredentials prefere DB_USERNAME/DB_PASSWORD; sem eles, consulta o Secrets Manager.
func retrieveCredentials(secretID string) (string, string, error) {
	secretUsername := os.Getenv("DB_USERNAME")
	secretPassword := os.Getenv("DB_PASSWORD")
	if secretUsername != "" && secretPassword != "" {
		return secretUsername, secretPassword, nil
	}
	if secretID == "" {
		return "", "", errors.New("DB_SECRET_ID não definido e credenciais ausentes")
	}

	ctx := context.Background()
	secrets, err := initSecretsConfig(ctx)
	if err != nil {
		return "", "", err
	}
	result, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("buscar segredo %s: %w", secretID, err)
	}

	return parseCredentials(aws.ToString(result.SecretString))
}

func parseCredentials(raw string) (string, string, error) {
	var secret Credentials
	if err := json.Unmarshal([]byte(raw), &secret); err != nil {
		return "", "", fmt.Errorf("segredo em formato inválido: %w", err)
	}
	if secret.Username == "" || secret.Password == "" {
		return "", "", errors.New("segredo sem username/password")
	}
	return secret.Username, secret.Password, nil
}
