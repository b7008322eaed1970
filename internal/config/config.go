package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v8"
)

type Config interface {
	ServerAddress() string
	DatabaseURI() string
	CatalogAddress() string
	TaskImportInterval() time.Duration
}

type Builder struct {
	parameters *parameters
	arguments  []string
	err        error
}

type parameters struct {
	ServerAddress      string        `env:"RUN_ADDRESS"`
	DatabaseURI        string        `env:"DATABASE_URI"`
	CatalogAddress     string        `env:"CATALOG_ADDRESS"`
	TaskImportInterval time.Duration `env:"TASK_IMPORT_INTERVAL"`
}

const (
	defaultServerAddress      = "localhost:8080"
	defaultTaskImportInterval = time.Minute
)

func NewBuilder() *Builder {
	return &Builder{
		parameters: &parameters{
			ServerAddress:      defaultServerAddress,
			TaskImportInterval: defaultTaskImportInterval,
		},
		arguments: os.Args[1:],
	}
}

func (b *Builder) LoadEnv() *Builder {
	b.err = env.Parse(b.parameters)

	return b
}

func (b *Builder) LoadFlags() *Builder {
	flags := flag.NewFlagSet("taskhub", flag.ContinueOnError)
	flags.StringVar(&b.parameters.ServerAddress, "a", b.parameters.ServerAddress, "адрес и порт запуска HTTP-сервера")
	flags.StringVar(&b.parameters.DatabaseURI, "d", b.parameters.DatabaseURI, "адрес подключения к PostgreSQL")
	flags.StringVar(&b.parameters.CatalogAddress, "c", b.parameters.CatalogAddress, "адрес каталога задач")
	flags.DurationVar(&b.parameters.TaskImportInterval, "i", b.parameters.TaskImportInterval, "период импорта задач из каталога")
	b.err = flags.Parse(b.arguments)

	return b
}

func (b *Builder) Build() (Config, error) {
	return b, b.err
}

func (b *Builder) ServerAddress() string {
	return b.parameters.ServerAddress
}

func (b *Builder) DatabaseURI() string {
	return b.parameters.DatabaseURI
}

func (b *Builder) CatalogAddress() string {
	return b.parameters.CatalogAddress
}

func (b *Builder) TaskImportInterval() time.Duration {
	return b.parameters.TaskImportInterval
}
