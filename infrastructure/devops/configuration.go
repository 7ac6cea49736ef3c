package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// DBEntry is the yaml database configuration, read from a local file in
// development or an SSM parameter in the deployed environments.
type DBEntry struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// DSN renders the entry as a go-sql-driver DSN.
func (e DBEntry) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", e.Username, e.Password, e.Host, e.Name)
}

var (
	once    sync.Once
	dbEntry DBEntry
	loadErr error
)

// LoadDBConfig loads the database configuration once per process. The
// PONTUAL_CONFIG file takes precedence; otherwise the "pontual/database" SSM
// parameter is fetched with decryption.
func LoadDBConfig(ctx context.Context) (DBEntry, error) {
	once.Do(func() {
		if path := os.Getenv("PONTUAL_CONFIG"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				loadErr = fmt.Errorf("read config file: %w", err)
				return
			}
			loadErr = yaml.Unmarshal(raw, &dbEntry)
			return
		}

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String("pontual/database"),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		loadErr = yaml.Unmarshal([]byte(*out.Parameter.Value), &dbEntry)
	})

	return dbEntry, loadErr
}
