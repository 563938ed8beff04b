package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"60s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"ENABLED"`
	ServiceName string  `default:"quickcart" envconfig:"SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"SAMPLE_RATIO"`
}

// Browser — параметры chromedp-аллокатора.
type Browser struct {
	Headless  bool   `default:"true" envconfig:"HEADLESS"`
	NoSandbox bool   `default:"true" envconfig:"NO_SANDBOX"`
	RemoteURL string `default:"" envconfig:"REMOTE_URL"` // внешний Chrome (ws://...); пусто — локальный запуск
}

// Scrape — параметры поискового шлюза.
type Scrape struct {
	MaxResults   int           `default:"20" envconfig:"MAX_RESULTS"`
	WaitTimeout  time.Duration `default:"12s" envconfig:"WAIT_TIMEOUT"`  // ожидание контейнера результатов
	FetchTimeout time.Duration `default:"15s" envconfig:"FETCH_TIMEOUT"` // HTTP-ветка
}

// Compare — параметры кросс-платформенного сравнения.
type Compare struct {
	PerPlatform int           `default:"4" envconfig:"PER_PLATFORM"` // лимит параллельности на платформу
	Deadline    time.Duration `default:"90s" envconfig:"DEADLINE"`   // общий дедлайн одного сравнения
}

// Approval — политика автоподтверждения.
type Approval struct {
	ThresholdMinor int64 `default:"5000" envconfig:"THRESHOLD_MINOR"` // ₹50 в пайсах
}

// Automation — драйвер оформления заказа.
type Automation struct {
	StepTimeout time.Duration `default:"10s" envconfig:"STEP_TIMEOUT"`
}

type Ledger struct {
	Capacity int `default:"100" envconfig:"CAPACITY"`
}

type Kafka struct {
	Brokers []string `default:"" envconfig:"BROKERS"` // пусто — публикация событий выключена
	Topic   string   `default:"order-events" envconfig:"TOPIC"`
}

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Tracing    Tracing
	Browser    Browser
	Scrape     Scrape
	Compare    Compare
	Approval   Approval
	Automation Automation
	Ledger     Ledger
	Kafka      Kafka
}

func Load() (Config, error) {
	return LoadWithPrefix("QC")
}

// LoadWithPrefix — загрузка с произвольным префиксом переменных окружения
// (удобно изолировать окружение в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
