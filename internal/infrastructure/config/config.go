package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPath = "./config/application.yaml"
	envPrefix   = "TIFFIN_"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStoreDynamoDB = "dynamodb"
)

type Application struct {
	Server    Server    `koanf:"server"`
	Log       Log       `koanf:"log"`
	Business  Business  `koanf:"business"`
	Estimator Estimator `koanf:"estimator"`
	Session   Session   `koanf:"session"`
	Redis     Redis     `koanf:"redis"`
	DynamoDB  DynamoDB  `koanf:"dynamodb"`
}

type Server struct {
	Port int `koanf:"port"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Business struct {
	Name        string `koanf:"name"`
	Tagline     string `koanf:"tagline"`
	ServiceArea string `koanf:"servicearea"`
	Phone       string `koanf:"phone"`
	Website     string `koanf:"website"`
}

type Estimator struct {
	TaxRate          string `koanf:"taxrate"`
	DefaultUnitPrice string `koanf:"defaultunitprice"`
	Locale           string `koanf:"locale"`
	CurrencySymbol   string `koanf:"currencysymbol"`
	QuoteFilename    string `koanf:"quotefilename"`
}

type Session struct {
	Store string        `koanf:"store"`
	TTL   time.Duration `koanf:"ttl"`
}

type Redis struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type DynamoDB struct {
	Region   string `koanf:"region"`
	Endpoint string `koanf:"endpoint"`
	Table    string `koanf:"table"`
}

func Defaults() Application {
	return Application{
		Server: Server{Port: 8080},
		Log:    Log{Level: "info"},
		Business: Business{
			Name:        "Tiffin Tales",
			Tagline:     "Pure Veg Tiffin Service",
			ServiceArea: "Fleetwood, Surrey, BC",
			Phone:       "+1-604-618-7770",
			Website:     "tiffintales.ca",
		},
		Estimator: Estimator{
			TaxRate:          "0.12",
			DefaultUnitPrice: "8",
			Locale:           "en-CA",
			CurrencySymbol:   "$",
			QuoteFilename:    "tiffin-tales-budget",
		},
		Session: Session{
			Store: SessionStoreMemory,
			TTL:   2 * time.Hour,
		},
		Redis: Redis{Addr: "localhost:6379"},
		DynamoDB: DynamoDB{
			Region: "us-east-1",
			Table:  "estimator_sessions",
		},
	}
}

// Path returns CONFIG_FILE when set, DefaultPath otherwise.
func Path() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return DefaultPath
}

// Load layers struct defaults, the optional YAML file at path and TIFFIN_*
// environment variables, in that order.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	if err := app.Validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (a Application) Validate() error {
	rate, err := a.Estimator.TaxRateDecimal()
	if err != nil {
		return err
	}
	if rate.IsNegative() {
		return fmt.Errorf("estimator.taxrate must not be negative, got %s", rate)
	}
	price, err := a.Estimator.DefaultUnitPriceDecimal()
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return fmt.Errorf("estimator.defaultunitprice must not be negative, got %s", price)
	}
	if a.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", a.Session.TTL)
	}
	switch a.Session.Store {
	case SessionStoreMemory, SessionStoreRedis, SessionStoreDynamoDB:
	default:
		return fmt.Errorf("unknown session.store %q", a.Session.Store)
	}
	return nil
}

func (e Estimator) TaxRateDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(e.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid estimator.taxrate %q: %w", e.TaxRate, err)
	}
	return d, nil
}

func (e Estimator) DefaultUnitPriceDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(e.DefaultUnitPrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid estimator.defaultunitprice %q: %w", e.DefaultUnitPrice, err)
	}
	return d, nil
}
